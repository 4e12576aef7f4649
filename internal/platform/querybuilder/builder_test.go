package querybuilder

import "testing"

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("id", "name").
		From("players").
		Where(Eq("team_id", "team-1"), IsNotNull("team_id")).
		OrderBy("id").
		Limit(10).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT id, name FROM players WHERE team_id = $1 AND team_id IS NOT NULL ORDER BY id LIMIT 10"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 1 || args[0] != "team-1" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilderJoin(t *testing.T) {
	query, args, err := Select("e.player_id", "e.fielding_position").
		From("lineup_entries e").
		Join("players p ON p.id = e.player_id").
		Where(Eq("p.team_id", "team-1")).
		OrderBy("e.player_id").
		ToSQL()
	if err != nil {
		t.Fatalf("build join query: %v", err)
	}

	wantQuery := "SELECT e.player_id, e.fielding_position FROM lineup_entries e JOIN players p ON p.id = e.player_id WHERE p.team_id = $1 ORDER BY e.player_id"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 1 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilder(t *testing.T) {
	query, args, err := InsertInto("users").
		Columns("id", "name").
		Values("u1", "name-1").
		Suffix("ON CONFLICT (id) DO NOTHING").
		ToSQL()
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	wantQuery := "INSERT INTO users (id, name) VALUES ($1, $2) ON CONFLICT (id) DO NOTHING"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "u1" || args[1] != "name-1" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestUpdateBuilder(t *testing.T) {
	query, args, err := Update("teams").
		Set("name", "Riverbend Otters").
		Set("abbreviation", "RVO").
		Where(Eq("id", "team-1")).
		ToSQL()
	if err != nil {
		t.Fatalf("build update query: %v", err)
	}

	wantQuery := "UPDATE teams SET name = $1, abbreviation = $2 WHERE id = $3"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 3 || args[2] != "team-1" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestDeleteBuilderUsing(t *testing.T) {
	query, args, err := DeleteFrom("lineup_entries").
		Using("players").
		Where(Expr("players.id = lineup_entries.player_id"), Eq("players.team_id", "team-1")).
		ToSQL()
	if err != nil {
		t.Fatalf("build delete query: %v", err)
	}

	wantQuery := "DELETE FROM lineup_entries USING players WHERE players.id = lineup_entries.player_id AND players.team_id = $1"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 1 || args[0] != "team-1" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

package httpapi

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/pennantrace/sandlot/internal/domain/conference"
	"github.com/pennantrace/sandlot/internal/domain/lineup"
	"github.com/pennantrace/sandlot/internal/domain/match"
	"github.com/pennantrace/sandlot/internal/domain/player"
	"github.com/pennantrace/sandlot/internal/domain/season"
	"github.com/pennantrace/sandlot/internal/domain/standings"
	"github.com/pennantrace/sandlot/internal/domain/team"
	"github.com/pennantrace/sandlot/internal/domain/user"
	"github.com/pennantrace/sandlot/internal/infrastructure/notify"
	"github.com/pennantrace/sandlot/internal/usecase"
)

type Handler struct {
	seasonService      *usecase.SeasonService
	draftService       *usecase.DraftService
	lineupService      *usecase.LineupService
	teamService        *usecase.TeamService
	userService        *usecase.UserService
	matchService       *usecase.MatchService
	standingsService   *usecase.StandingsService
	leaderboardService *usecase.LeaderboardService
	eventHub           *notify.Hub
	logger             *slog.Logger
	validator          *validator.Validate
}

func NewHandler(
	seasonService *usecase.SeasonService,
	draftService *usecase.DraftService,
	lineupService *usecase.LineupService,
	teamService *usecase.TeamService,
	userService *usecase.UserService,
	matchService *usecase.MatchService,
	standingsService *usecase.StandingsService,
	leaderboardService *usecase.LeaderboardService,
	eventHub *notify.Hub,
	logger *slog.Logger,
) *Handler {
	if logger == nil {
		logger = slog.Default()
	}

	return &Handler{
		seasonService:      seasonService,
		draftService:       draftService,
		lineupService:      lineupService,
		teamService:        teamService,
		userService:        userService,
		matchService:       matchService,
		standingsService:   standingsService,
		leaderboardService: leaderboardService,
		eventHub:           eventHub,
		logger:             logger,
		validator:          validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

type seasonDTO struct {
	State                 string  `json:"state"`
	CurrentDraftingUserID *string `json:"currentDraftingUserId"`
}

func seasonToDTO(item season.Season) seasonDTO {
	return seasonDTO{
		State:                 string(item.State),
		CurrentDraftingUserID: item.CurrentDraftingUserID,
	}
}

type teamDTO struct {
	ID           string  `json:"id"`
	OwnerUserID  *string `json:"ownerUserId"`
	Name         string  `json:"name"`
	Abbreviation string  `json:"abbreviation"`
	CaptainID    *string `json:"captainId"`
	ConferenceID *string `json:"conferenceId"`
}

func teamToDTO(item team.Team) teamDTO {
	return teamDTO{
		ID:           item.ID,
		OwnerUserID:  item.OwnerUserID,
		Name:         item.Name,
		Abbreviation: item.Abbreviation,
		CaptainID:    item.CaptainID,
		ConferenceID: item.ConferenceID,
	}
}

type playerAttributesDTO struct {
	Character string `json:"character"`
	Batting   int    `json:"batting"`
	Pitching  int    `json:"pitching"`
	Fielding  int    `json:"fielding"`
	Speed     int    `json:"speed"`
}

type playerDTO struct {
	ID         string              `json:"id"`
	Name       string              `json:"name"`
	TeamID     *string             `json:"teamId"`
	Attributes playerAttributesDTO `json:"attributes"`
}

func playerToDTO(item player.Player) playerDTO {
	return playerDTO{
		ID:     item.ID,
		Name:   item.Name,
		TeamID: item.TeamID,
		Attributes: playerAttributesDTO{
			Character: item.Attributes.Character,
			Batting:   item.Attributes.Batting,
			Pitching:  item.Attributes.Pitching,
			Fielding:  item.Attributes.Fielding,
			Speed:     item.Attributes.Speed,
		},
	}
}

type lineupEntryDTO struct {
	PlayerID         string  `json:"playerId"`
	FieldingPosition *string `json:"fieldingPosition"`
	BattingOrder     *int    `json:"battingOrder"`
	IsStarred        bool    `json:"isStarred"`
}

func lineupEntryToDTO(item lineup.Entry) lineupEntryDTO {
	var position *string
	if item.FieldingPosition != nil {
		value := string(*item.FieldingPosition)
		position = &value
	}
	return lineupEntryDTO{
		PlayerID:         item.PlayerID,
		FieldingPosition: position,
		BattingOrder:     item.BattingOrder,
		IsStarred:        item.IsStarred,
	}
}

func lineupEntriesToDTO(items []lineup.Entry) []lineupEntryDTO {
	out := make([]lineupEntryDTO, 0, len(items))
	for _, item := range items {
		out = append(out, lineupEntryToDTO(item))
	}
	return out
}

type userDTO struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Role       string `json:"role"`
	ExternalID string `json:"externalId"`
}

func userToDTO(item user.User) userDTO {
	return userDTO{
		ID:         item.ID,
		Name:       item.Name,
		Role:       string(item.Role),
		ExternalID: item.ExternalID,
	}
}

type conferenceDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type matchDTO struct {
	ID         string  `json:"id"`
	TeamAID    string  `json:"teamAId"`
	TeamBID    string  `json:"teamBId"`
	MatchDayID *string `json:"matchDayId"`
	State      string  `json:"state"`
	TeamAScore *int    `json:"teamAScore"`
	TeamBScore *int    `json:"teamBScore"`
	OrderInDay int     `json:"orderInDay"`
}

func matchToDTO(item match.Match) matchDTO {
	return matchDTO{
		ID:         item.ID,
		TeamAID:    item.TeamAID,
		TeamBID:    item.TeamBID,
		MatchDayID: item.MatchDayID,
		State:      string(item.State),
		TeamAScore: item.TeamAScore,
		TeamBScore: item.TeamBScore,
		OrderInDay: item.OrderInDay,
	}
}

type matchDayDTO struct {
	ID            string  `json:"id"`
	Name          *string `json:"name"`
	Date          string  `json:"date"`
	OrderInSeason int     `json:"orderInSeason"`
}

type scheduleDayDTO struct {
	Day     matchDayDTO `json:"day"`
	Matches []matchDTO  `json:"matches"`
}

func scheduleDayToDTO(item usecase.ScheduleDay) scheduleDayDTO {
	matches := make([]matchDTO, 0, len(item.Matches))
	for _, m := range item.Matches {
		matches = append(matches, matchToDTO(m))
	}
	return scheduleDayDTO{
		Day: matchDayDTO{
			ID:            item.Day.ID,
			Name:          item.Day.Name,
			Date:          item.Day.Date.Format(time.RFC3339),
			OrderInSeason: item.Day.OrderInSeason,
		},
		Matches: matches,
	}
}

type dayResultDTO struct {
	OwnScore      int  `json:"ownScore"`
	OpponentScore int  `json:"opponentScore"`
	Won           bool `json:"won"`
}

type standingsRowDTO struct {
	UserID          string                  `json:"userId"`
	TeamID          string                  `json:"teamId"`
	Wins            int                     `json:"wins"`
	Losses          int                     `json:"losses"`
	RunDifferential int                     `json:"runDifferential"`
	ResultsByDay    map[string]dayResultDTO `json:"resultsByDay"`
}

type standingsTableDTO struct {
	Rows []standingsRowDTO `json:"rows"`
	Days []string          `json:"days"`
}

func standingsTableToDTO(table standings.Table) standingsTableDTO {
	rows := make([]standingsRowDTO, 0, len(table.Rows))
	for _, row := range table.Rows {
		results := make(map[string]dayResultDTO, len(row.ResultsByDay))
		for dayID, cell := range row.ResultsByDay {
			results[dayID] = dayResultDTO{
				OwnScore:      cell.OwnScore,
				OpponentScore: cell.OpponentScore,
				Won:           cell.Won,
			}
		}
		rows = append(rows, standingsRowDTO{
			UserID:          row.UserID,
			TeamID:          row.TeamID,
			Wins:            row.Wins,
			Losses:          row.Losses,
			RunDifferential: row.RunDifferential,
			ResultsByDay:    results,
		})
	}
	days := table.Days
	if days == nil {
		days = []string{}
	}
	return standingsTableDTO{Rows: rows, Days: days}
}

func conferenceToDTO(item conference.Conference) conferenceDTO {
	return conferenceDTO{ID: item.ID, Name: item.Name}
}

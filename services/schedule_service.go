package services

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"math/rand"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/gms-project/gms-backend/models"
	"github.com/gms-project/gms-backend/repositories"
	"github.com/gms-project/gms-backend/schedule"
)

// ScheduleResult summarizes one generation run.
type ScheduleResult struct {
	CompetitionID int             `json:"competition_id"`
	Generator     string          `json:"generator"`
	Draft         bool            `json:"draft"`
	Deleted       int64           `json:"deleted_matches"`
	Matches       []*models.Match `json:"matches"`
}

// CompetitionOverview is the aggregate read model for one competition.
type CompetitionOverview struct {
	Competition *models.Competition `json:"competition"`
	Matches     []*models.Match     `json:"matches"`
	Standings   []*models.Standing  `json:"standings"`
}

type ScheduleService interface {
	GenerateSchedule(ctx context.Context, competitionID int) (*ScheduleResult, error)
	GenerateDraftSchedule(ctx context.Context, competitionID int) (*ScheduleResult, error)
	SaveSeedingAndGenerate(ctx context.Context, competitionID int, order []int) (*ScheduleResult, error)
	AssignMatchDates(ctx context.Context, competitionID int) ([]*models.Match, error)
	FinalizeSchedule(ctx context.Context, competitionID int) ([]*models.Match, error)
	ResetBracket(ctx context.Context, competitionID int) error
	ListMatches(ctx context.Context, competitionID int, round *int, status *models.MatchStatus) ([]*models.Match, error)
	GetCompetitionOverview(ctx context.Context, competitionID int) (*CompetitionOverview, error)
}

type scheduleService struct {
	db              *sql.DB
	competitionRepo repositories.CompetitionRepository
	formatRepo      repositories.FormatRepository
	matchRepo       repositories.MatchRepository
	resultRepo      repositories.ResultRepository
	standingRepo    repositories.StandingRepository
	roster          RosterProvider
	hub             *schedule.Hub
	logger          *slog.Logger
	rnd             *rand.Rand
	now             func() time.Time
}

// NewScheduleService wires the generation pipeline. rnd seeds the group draw
// and may be nil for a time-seeded draw; now may be nil for wall-clock time.
func NewScheduleService(
	db *sql.DB,
	competitionRepo repositories.CompetitionRepository,
	formatRepo repositories.FormatRepository,
	matchRepo repositories.MatchRepository,
	resultRepo repositories.ResultRepository,
	standingRepo repositories.StandingRepository,
	roster RosterProvider,
	hub *schedule.Hub,
	logger *slog.Logger,
	rnd *rand.Rand,
	now func() time.Time,
) ScheduleService {
	if now == nil {
		now = time.Now
	}
	return &scheduleService{
		db:              db,
		competitionRepo: competitionRepo,
		formatRepo:      formatRepo,
		matchRepo:       matchRepo,
		resultRepo:      resultRepo,
		standingRepo:    standingRepo,
		roster:          roster,
		hub:             hub,
		logger:          logger,
		rnd:             rnd,
		now:             now,
	}
}

func (s *scheduleService) GenerateSchedule(ctx context.Context, competitionID int) (*ScheduleResult, error) {
	return s.generate(ctx, competitionID, false)
}

func (s *scheduleService) GenerateDraftSchedule(ctx context.Context, competitionID int) (*ScheduleResult, error) {
	return s.generate(ctx, competitionID, true)
}

// SaveSeedingAndGenerate stores the explicit seeding order and regenerates the
// schedule from it in one call.
func (s *scheduleService) SaveSeedingAndGenerate(ctx context.Context, competitionID int, order []int) (*ScheduleResult, error) {
	comp, err := s.loadCompetition(ctx, competitionID)
	if err != nil {
		return nil, err
	}
	if err := s.roster.SaveSeeding(ctx, comp, order); err != nil {
		return nil, err
	}
	return s.generate(ctx, competitionID, false)
}

// generate runs the full pipeline: validation gate, roster resolution, pure
// match computation, then a single transactional replace of the stored
// schedule. Nothing is written when any earlier stage fails.
func (s *scheduleService) generate(ctx context.Context, competitionID int, draft bool) (*ScheduleResult, error) {
	comp, err := s.loadCompetition(ctx, competitionID)
	if err != nil {
		return nil, err
	}

	enrolled, err := s.competitionRepo.CountEnrolled(ctx, comp.ID, comp.ParticipantType)
	if err != nil {
		return nil, fmt.Errorf("failed to count enrolled entities: %w", err)
	}
	if err := schedule.ValidateForScheduling(comp, comp.Format, enrolled); err != nil {
		return nil, err
	}

	roster, err := s.roster.Roster(ctx, comp)
	if err != nil {
		return nil, err
	}

	gen := schedule.ForFormat(comp.Format.Type)
	specs, err := gen.Generate(ctx, schedule.Params{
		Competition: comp,
		Roster:      roster,
		Draft:       draft,
		Rand:        s.rnd,
		Now:         s.now(),
	})
	if err != nil {
		return nil, fmt.Errorf("generator %s failed for competition %d: %w", gen.Name(), comp.ID, err)
	}

	matches := make([]*models.Match, 0, len(specs))
	for _, spec := range specs {
		matches = append(matches, specToMatch(comp, spec))
	}

	var deleted int64
	err = s.withTx(ctx, func(tx *sql.Tx) error {
		if err := s.resultRepo.DeleteByCompetition(ctx, tx, comp.ID); err != nil {
			return err
		}
		if err := s.standingRepo.DeleteByCompetition(ctx, tx, comp.ID); err != nil {
			return err
		}
		deleted, err = s.matchRepo.DeleteByCompetition(ctx, tx, comp.ID)
		if err != nil {
			return err
		}
		for _, match := range matches {
			if err := s.matchRepo.Create(ctx, tx, match); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("schedule generated",
		slog.Int("competition_id", comp.ID),
		slog.String("generator", gen.Name()),
		slog.Bool("draft", draft),
		slog.Int("matches", len(matches)),
		slog.Int64("replaced", deleted),
	)
	s.broadcast(comp.ID, schedule.EventScheduleGenerated, matches)

	return &ScheduleResult{
		CompetitionID: comp.ID,
		Generator:     gen.Name(),
		Draft:         draft,
		Deleted:       deleted,
		Matches:       matches,
	}, nil
}

// AssignMatchDates walks the date cursor over the existing draft matches.
// Elimination rounds share one date; other formats advance per match. Matches
// left past the window keep their placeholder time. Statuses stay DRAFT until
// FinalizeSchedule.
func (s *scheduleService) AssignMatchDates(ctx context.Context, competitionID int) ([]*models.Match, error) {
	comp, err := s.loadCompetition(ctx, competitionID)
	if err != nil {
		return nil, err
	}

	draftStatus := models.MatchStatusDraft
	matches, err := s.matchRepo.ListByCompetition(ctx, comp.ID, nil, &draftStatus)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, ErrScheduleNotDraft
	}

	assigned := schedule.AssignDates(comp, matches, s.now())

	err = s.withTx(ctx, func(tx *sql.Tx) error {
		for _, match := range assigned {
			if match.ScheduledTime == nil {
				continue
			}
			if err := s.matchRepo.UpdateSchedule(ctx, tx, match.ID, *match.ScheduledTime, match.Status); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("match dates assigned", slog.Int("competition_id", comp.ID), slog.Int("matches", len(assigned)))
	return assigned, nil
}

// FinalizeSchedule promotes every draft match to SCHEDULED.
func (s *scheduleService) FinalizeSchedule(ctx context.Context, competitionID int) ([]*models.Match, error) {
	comp, err := s.loadCompetition(ctx, competitionID)
	if err != nil {
		return nil, err
	}

	draftStatus := models.MatchStatusDraft
	matches, err := s.matchRepo.ListByCompetition(ctx, comp.ID, nil, &draftStatus)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, ErrScheduleNotDraft
	}

	err = s.withTx(ctx, func(tx *sql.Tx) error {
		for _, match := range matches {
			// A draft without an assigned time stays draft.
			if match.ScheduledTime == nil {
				continue
			}
			if err := s.matchRepo.UpdateSchedule(ctx, tx, match.ID, *match.ScheduledTime, models.MatchStatusScheduled); err != nil {
				return err
			}
			match.Status = models.MatchStatusScheduled
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("schedule finalized", slog.Int("competition_id", comp.ID), slog.Int("matches", len(matches)))
	s.broadcast(comp.ID, schedule.EventScheduleGenerated, matches)
	return matches, nil
}

// ResetBracket wipes matches, results and standings for the competition and
// drops any saved seeding, returning it to the pre-generation state.
func (s *scheduleService) ResetBracket(ctx context.Context, competitionID int) error {
	comp, err := s.loadCompetition(ctx, competitionID)
	if err != nil {
		return err
	}

	err = s.withTx(ctx, func(tx *sql.Tx) error {
		if err := s.resultRepo.DeleteByCompetition(ctx, tx, comp.ID); err != nil {
			return err
		}
		if err := s.standingRepo.DeleteByCompetition(ctx, tx, comp.ID); err != nil {
			return err
		}
		_, err := s.matchRepo.DeleteByCompetition(ctx, tx, comp.ID)
		return err
	})
	if err != nil {
		return err
	}

	s.roster.ClearSeeding(comp.ID)
	s.logger.Info("bracket reset", slog.Int("competition_id", comp.ID))
	s.broadcast(comp.ID, schedule.EventBracketReset, nil)
	return nil
}

func (s *scheduleService) ListMatches(ctx context.Context, competitionID int, round *int, status *models.MatchStatus) ([]*models.Match, error) {
	if _, err := s.competitionRepo.GetByID(ctx, competitionID); err != nil {
		return nil, err
	}
	return s.matchRepo.ListByCompetition(ctx, competitionID, round, status)
}

// GetCompetitionOverview fetches the competition, its matches and its
// standings in parallel.
func (s *scheduleService) GetCompetitionOverview(ctx context.Context, competitionID int) (*CompetitionOverview, error) {
	overview := &CompetitionOverview{}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		comp, err := s.loadCompetition(gCtx, competitionID)
		if err != nil {
			return err
		}
		overview.Competition = comp
		return nil
	})
	g.Go(func() error {
		matches, err := s.matchRepo.ListByCompetition(gCtx, competitionID, nil, nil)
		if err != nil {
			return err
		}
		overview.Matches = matches
		return nil
	})
	g.Go(func() error {
		standings, err := s.standingRepo.ListByCompetition(gCtx, competitionID)
		if err != nil {
			return err
		}
		overview.Standings = standings
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return overview, nil
}

// loadCompetition fetches the competition with its format and, for CUSTOM
// frequency, its allowed dates.
func (s *scheduleService) loadCompetition(ctx context.Context, competitionID int) (*models.Competition, error) {
	comp, err := s.competitionRepo.GetByID(ctx, competitionID)
	if err != nil {
		return nil, err
	}

	format, err := s.formatRepo.GetByID(ctx, comp.FormatID)
	if err != nil {
		if err == repositories.ErrFormatNotFound {
			comp.Format = nil
			return comp, nil
		}
		return nil, err
	}
	comp.Format = format

	if comp.Frequency == models.FrequencyCustom {
		days, err := s.competitionRepo.ListCustomDays(ctx, comp.ID)
		if err != nil {
			return nil, err
		}
		comp.CustomDays = days
	}
	return comp, nil
}

func (s *scheduleService) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			s.logger.Error("transaction rollback failed", slog.Any("error", rbErr))
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (s *scheduleService) broadcast(competitionID int, event string, payload interface{}) {
	if s.hub == nil {
		return
	}
	s.hub.BroadcastToRoom(strconv.Itoa(competitionID), schedule.Message{Type: event, Payload: payload})
}

// specToMatch maps a generated spec onto the persistence model, routing entity
// ids into club or participant slots by the competition's participant type.
func specToMatch(comp *models.Competition, spec *schedule.MatchSpec) *models.Match {
	match := &models.Match{
		CompetitionID: comp.ID,
		ScheduledTime: spec.ScheduledAt,
		Status:        spec.Status,
		RoundNumber:   &spec.Round,
		GroupNumber:   spec.GroupNumber,
		BracketType:   spec.BracketType,
	}
	if comp.ParticipantType == models.ParticipantTypeParticipants {
		match.HomeParticipantID = spec.HomeID
		match.AwayParticipantID = spec.AwayID
	} else {
		match.HomeClubID = spec.HomeID
		match.AwayClubID = spec.AwayID
	}
	return match
}

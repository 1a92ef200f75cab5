package adventure

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/deremos/RealmBot_Go/internal/content"
	"github.com/deremos/RealmBot_Go/internal/domain"
	"github.com/deremos/RealmBot_Go/internal/logger"
	"github.com/deremos/RealmBot_Go/internal/user"
)

// Service is the adventure progression engine. Gate misses (cooldowns, bad
// targets, insufficient funds) come back as failure results, never errors;
// storage faults are logged and surfaced as a generic failure.
type Service interface {
	GetProfile(ctx context.Context, userID, username string) (*domain.AdventureState, error)
	Hunt(ctx context.Context, userID string) *domain.HuntResult
	Train(ctx context.Context, userID string) *domain.TrainResult
	ClaimDaily(ctx context.Context, userID string) *domain.DailyResult
	BuyItem(ctx context.Context, userID, itemID string) *domain.PurchaseResult
	EquipItem(ctx context.Context, userID, itemID string) *domain.EquipResult
	Travel(ctx context.Context, userID, locationID string) *domain.TravelResult
	AvailableQuests(ctx context.Context, userID string) ([]domain.Quest, error)
	CompleteQuest(ctx context.Context, userID, questID string) *domain.QuestTurnIn
}

// errSkipWrite aborts a repository update without persisting anything. Used
// when a gate check fails mid-transaction.
var errSkipWrite = errors.New("skip write")

type service struct {
	repo    *user.Repository
	catalog *content.Catalog

	rng   *rand.Rand
	rngMu sync.Mutex
	now   func() time.Time

	nameCaser cases.Caser
}

// NewService creates the adventure engine. seed feeds the encounter RNG;
// combat itself is deterministic given stats.
func NewService(repo *user.Repository, catalog *content.Catalog, seed int64) Service {
	//nolint:gosec // G404: math/rand is acceptable for game mechanics, not for cryptographic purposes
	return &service{
		repo:      repo,
		catalog:   catalog,
		rng:       rand.New(rand.NewSource(seed)),
		now:       time.Now,
		nameCaser: cases.Title(language.English),
	}
}

// GetProfile returns the adventure state, lazily creating it with starting
// values on first access. A repeated call with no action in between returns
// an identical profile.
func (s *service) GetProfile(ctx context.Context, userID, username string) (*domain.AdventureState, error) {
	rec, ok, err := s.repo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if ok && rec.Adventure != nil {
		return rec.Adventure, nil
	}

	rec, err = s.repo.Update(ctx, userID, func(rec *domain.UserRecord) error {
		if username != "" && rec.User.Username == "" {
			rec.User.Username = username
		}
		s.ensureProfile(rec)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rec.Adventure, nil
}

// ensureProfile creates the adventure namespace with starting values.
func (s *service) ensureProfile(rec *domain.UserRecord) {
	if rec.Adventure != nil {
		return
	}
	name := rec.User.Username
	if name == "" {
		name = rec.User.InternalID
	}
	rec.Adventure = &domain.AdventureState{
		CharacterName: s.nameCaser.String(name),
		Level:         StartingLevel,
		XPNeeded:      StartingXPNeeded,
		Stats: domain.Stats{
			Health:    StartingHealth,
			MaxHealth: StartingMaxHealth,
			Attack:    StartingAttack,
			Defense:   StartingDefense,
			Speed:     StartingSpeed,
		},
		Inventory: domain.AdventureInventory{Gold: StartingGold},
		Location:  s.catalog.StartLocation,
	}
}

// update runs mutate under the per-user lock with the profile guaranteed to
// exist. mutate returning errSkipWrite discards the mutation, except that a
// profile created on this call is still persisted: gate checks run before any
// mutation, so the freshly ensured state is safe to write as-is.
func (s *service) update(ctx context.Context, userID string, mutate func(*domain.AdventureState) error) error {
	_, err := s.repo.Update(ctx, userID, func(rec *domain.UserRecord) error {
		created := rec.Adventure == nil
		s.ensureProfile(rec)
		if err := mutate(rec.Adventure); err != nil {
			if errors.Is(err, errSkipWrite) && created {
				return nil
			}
			return err
		}
		return nil
	})
	if errors.Is(err, errSkipWrite) {
		return nil
	}
	return err
}

// cooldownReady reports whether the gate timestamp has passed.
func (s *service) cooldownReady(at int64) bool {
	return at <= s.now().UnixMilli()
}

// cooldownMessage renders a friendly remaining-time string.
func (s *service) cooldownMessage(action string, at int64) string {
	remaining := time.Duration(at-s.now().UnixMilli()) * time.Millisecond
	minutes := int(remaining.Minutes())
	seconds := int(remaining.Seconds()) % 60

	if minutes >= 60 {
		hours := minutes / 60
		minutes %= 60
		return fmt.Sprintf("You cannot %s yet: %dh %dm remaining.", action, hours, minutes)
	}
	if minutes > 0 {
		return fmt.Sprintf("You cannot %s yet: %dm %ds remaining.", action, minutes, seconds)
	}
	return fmt.Sprintf("You cannot %s yet: %ds remaining.", action, seconds)
}

func (s *service) cooldownUntil(d time.Duration) int64 {
	return s.now().Add(d).UnixMilli()
}

// rollFloat draws uniform [0,1).
func (s *service) rollFloat() float64 {
	s.rngMu.Lock()
	defer s.rngMu.Unlock()
	return s.rng.Float64()
}

// rollInt draws uniform [0,n).
func (s *service) rollInt(n int) int {
	s.rngMu.Lock()
	defer s.rngMu.Unlock()
	return s.rng.Intn(n)
}

// failLog logs an internal fault and returns the generic failure envelope.
func failLog(ctx context.Context, op string, err error) domain.ActionResult {
	logger.FromContext(ctx).Error("Adventure operation failed", "op", op, "error", err)
	return domain.ActionResult{Success: false, Message: MsgInternalError}
}

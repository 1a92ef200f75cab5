package leveling

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/deremos/RealmBot_Go/internal/domain"
	"github.com/deremos/RealmBot_Go/internal/logger"
	"github.com/deremos/RealmBot_Go/internal/metrics"
	"github.com/deremos/RealmBot_Go/internal/user"
)

// Config gates passive message XP.
type Config struct {
	Enabled          bool
	MinMessageLength int
	CommandPrefix    string
	MessageCooldown  time.Duration

	// PrivateMode restricts passive XP to owners and group admins.
	PrivateMode bool
	Owners      []string
}

// MessageContext carries the parts of an incoming chat event the gate checks
// inspect. GroupID is empty for direct messages.
type MessageContext struct {
	UserID   string
	Username string
	GroupID  string
	Body     string
	IsAdmin  bool
}

// Service is the message-XP leveling engine.
type Service interface {
	GetOrCreate(ctx context.Context, userID, username string) (*domain.UserRecord, error)
	// GrantMessageXP applies all gate checks and returns nil when the message
	// earns nothing. Gate misses are silent; only storage faults error.
	GrantMessageXP(ctx context.Context, msg MessageContext) (*domain.LevelUpResult, error)
	// GrantXP is the administrative grant. amount == 0 draws the random
	// message amount; bypassCooldown skips the passive throttle.
	GrantXP(ctx context.Context, userID string, amount int, bypassCooldown bool) (*domain.LevelUpResult, error)
	Rank(ctx context.Context, userID string) (int, error)
	TopN(ctx context.Context, n int) ([]domain.RankedUser, error)
	Progress(ctx context.Context, userID string) (*domain.LevelProgress, error)
}

type service struct {
	repo *user.Repository
	cfg  Config

	rng    *rand.Rand
	rngMu  sync.Mutex
	now    func() time.Time

	// Volatile per-user throttle for passive XP. Deliberately not persisted:
	// a restart resets it, unlike the adventure cooldowns in the record.
	cooldownMu sync.Mutex
	nextGrant  map[string]time.Time
}

// NewService creates the leveling engine. seed feeds the XP roll RNG.
func NewService(repo *user.Repository, cfg Config, seed int64) Service {
	if cfg.MinMessageLength <= 0 {
		cfg.MinMessageLength = DefaultMinMessageLength
	}
	if cfg.CommandPrefix == "" {
		cfg.CommandPrefix = DefaultCommandPrefix
	}
	if cfg.MessageCooldown <= 0 {
		cfg.MessageCooldown = DefaultMessageCooldown
	}
	//nolint:gosec // G404: math/rand is acceptable for game mechanics, not for cryptographic purposes
	return &service{
		repo:      repo,
		cfg:       cfg,
		rng:       rand.New(rand.NewSource(seed)),
		now:       time.Now,
		nextGrant: make(map[string]time.Time),
	}
}

func (s *service) GetOrCreate(ctx context.Context, userID, username string) (*domain.UserRecord, error) {
	return s.repo.GetOrCreate(ctx, userID, username)
}

func (s *service) GrantMessageXP(ctx context.Context, msg MessageContext) (*domain.LevelUpResult, error) {
	if !s.cfg.Enabled {
		return nil, nil
	}
	if len(msg.Body) < s.cfg.MinMessageLength {
		return nil, nil
	}
	if strings.HasPrefix(msg.Body, s.cfg.CommandPrefix) {
		return nil, nil
	}
	if msg.GroupID == "" {
		return nil, nil
	}
	if s.cfg.PrivateMode && !msg.IsAdmin && !s.isOwner(msg.UserID) {
		return nil, nil
	}
	if !s.passCooldown(msg.UserID) {
		return nil, nil
	}

	return s.grant(ctx, msg.UserID, msg.Username, msg.GroupID, s.rollXP(), true)
}

func (s *service) GrantXP(ctx context.Context, userID string, amount int, bypassCooldown bool) (*domain.LevelUpResult, error) {
	if !bypassCooldown && !s.passCooldown(userID) {
		return nil, nil
	}
	if amount == 0 {
		amount = s.rollXP()
	}
	return s.grant(ctx, userID, "", "", amount, false)
}

// grant applies the XP to the record and flushes immediately on level-up.
// fromMessage ties the grant to a chat message, which is the only thing the
// message counter tracks.
func (s *service) grant(ctx context.Context, userID, username, groupID string, amount int, fromMessage bool) (*domain.LevelUpResult, error) {
	log := logger.FromContext(ctx)

	var result domain.LevelUpResult
	rec, err := s.repo.Update(ctx, userID, func(rec *domain.UserRecord) error {
		if username != "" {
			rec.User.Username = username
		}

		lv := &rec.Leveling
		oldLevel := LevelForXP(lv.TotalXP)
		lv.TotalXP += amount
		if fromMessage {
			lv.MessageCount++
		}
		lv.LastActiveAt = s.now().UnixMilli()
		if groupID != "" && !lv.InGroup(groupID) {
			lv.Groups = append(lv.Groups, groupID)
		}
		newLevel := LevelForXP(lv.TotalXP)
		lv.Level = newLevel

		result = domain.LevelUpResult{
			UserID:        rec.User.InternalID,
			Username:      rec.User.Username,
			LeveledUp:     newLevel > oldLevel,
			OldLevel:      oldLevel,
			NewLevel:      newLevel,
			XPGained:      amount,
			CurrentXP:     lv.TotalXP,
			TotalMessages: lv.MessageCount,
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("grant xp: %w", err)
	}

	metrics.XPGranted.Add(float64(amount))
	if result.LeveledUp {
		metrics.LevelUps.WithLabelValues(metrics.EngineLeveling).Inc()
		log.Info("User leveled up",
			"user", rec.User.InternalID,
			"old_level", result.OldLevel,
			"new_level", result.NewLevel)
		if err := s.repo.Flush(ctx); err != nil {
			log.Error("Level-up flush failed", "user", rec.User.InternalID, "error", err)
		}
	}
	return &result, nil
}

func (s *service) Rank(ctx context.Context, userID string) (int, error) {
	key := user.Key(userID)
	ranked, err := s.ranked(ctx)
	if err != nil {
		return 0, err
	}
	for _, r := range ranked {
		if r.UserID == key {
			return r.Rank, nil
		}
	}
	return 0, nil
}

func (s *service) TopN(ctx context.Context, n int) ([]domain.RankedUser, error) {
	ranked, err := s.ranked(ctx)
	if err != nil {
		return nil, err
	}
	if n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked, nil
}

func (s *service) Progress(ctx context.Context, userID string) (*domain.LevelProgress, error) {
	rec, ok, err := s.repo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	p := Progress(LevelForXP(rec.Leveling.TotalXP), rec.Leveling.TotalXP)
	return &p, nil
}

// ranked sorts all records by total XP descending. Equal XP keeps store
// iteration order, which Entries makes deterministic (ascending key).
func (s *service) ranked(ctx context.Context) ([]domain.RankedUser, error) {
	entries, err := s.repo.Entries(ctx)
	if err != nil {
		return nil, fmt.Errorf("rank users: %w", err)
	}

	ranked := make([]domain.RankedUser, 0, len(entries))
	for _, e := range entries {
		ranked = append(ranked, domain.RankedUser{
			UserID:   e.Key,
			Username: e.Record.User.Username,
			TotalXP:  e.Record.Leveling.TotalXP,
			Level:    LevelForXP(e.Record.Leveling.TotalXP),
		})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TotalXP > ranked[j].TotalXP
	})
	for i := range ranked {
		ranked[i].Rank = i + 1
	}
	return ranked, nil
}

func (s *service) rollXP() int {
	s.rngMu.Lock()
	defer s.rngMu.Unlock()
	return MinMessageXP + s.rng.Intn(MaxMessageXP-MinMessageXP+1)
}

// passCooldown consumes the throttle slot when the user is eligible.
func (s *service) passCooldown(userID string) bool {
	key := user.Key(userID)
	now := s.now()

	s.cooldownMu.Lock()
	defer s.cooldownMu.Unlock()
	if next, ok := s.nextGrant[key]; ok && now.Before(next) {
		return false
	}
	s.nextGrant[key] = now.Add(s.cfg.MessageCooldown)
	return true
}

func (s *service) isOwner(userID string) bool {
	key := user.Key(userID)
	for _, o := range s.cfg.Owners {
		if user.Key(o) == key {
			return true
		}
	}
	return false
}

package worker

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/swingthoughts/swing-thoughts-api/internal/domain"
)

type FanoutThoughtRepository interface {
	FindRecentIDsByAuthor(ctx context.Context, authorID uint, limit int) ([]uint, error)
	UpdateAuthorFields(ctx context.Context, ids []uint, badges []string, gameIdentity string) error
}

type FanoutSocialRepository interface {
	FindThreadsByParticipant(ctx context.Context, userID uint) ([]domain.MessageThread, error)
	UpdateThreadParticipantBadges(ctx context.Context, threadID uint, badges map[uint][]string) error
	FindMembershipsByUser(ctx context.Context, userID uint) ([]domain.LeagueMember, error)
	UpdateMemberBadges(ctx context.Context, memberID uint, badges []string) error
}

type FanoutLeaderboardRepository interface {
	ListAll(ctx context.Context) ([]domain.Leaderboard, error)
	SaveScoreArrays(ctx context.Context, boards []domain.Leaderboard) error
}

// FanoutOptions bound the propagation work.
type FanoutOptions struct {
	// ThoughtLimit caps how many of the author's newest posts get rewritten.
	ThoughtLimit int
	// ChunkSize caps writes per transaction, kept under the store's
	// 500-write ceiling.
	ChunkSize int
	// QueueSize is the change-event buffer length.
	QueueSize int
}

// FanoutWorker propagates watched profile fields (challengeBadges,
// gameIdentity) to every denormalized copy. Each propagation target runs
// independently: one failing never aborts the others, and nothing is retried.
// A failed target stays stale until the next watched-field change.
type FanoutWorker struct {
	thoughts     FanoutThoughtRepository
	social       FanoutSocialRepository
	leaderboards FanoutLeaderboardRepository
	opts         FanoutOptions

	queue chan domain.ProfileChange
}

func NewFanoutWorker(thoughts FanoutThoughtRepository, social FanoutSocialRepository, leaderboards FanoutLeaderboardRepository, opts FanoutOptions) *FanoutWorker {
	if opts.ThoughtLimit <= 0 {
		opts.ThoughtLimit = 200
	}
	if opts.ChunkSize <= 0 {
		opts.ChunkSize = 450
	}
	if opts.QueueSize <= 0 {
		opts.QueueSize = 64
	}

	return &FanoutWorker{
		thoughts:     thoughts,
		social:       social,
		leaderboards: leaderboards,
		opts:         opts,
		queue:        make(chan domain.ProfileChange, opts.QueueSize),
	}
}

// Publish hands a profile change to the worker. Non-blocking: if the queue is
// full the change is dropped with a log line, consistent with the no-retry
// consistency model.
func (w *FanoutWorker) Publish(change domain.ProfileChange) {
	select {
	case w.queue <- change:
	default:
		zap.L().Warn("fanout: queue full, dropping change",
			zap.Uint("user_id", change.UserID))
	}
}

func (w *FanoutWorker) Start(ctx context.Context) {
	zap.L().Info("starting profile fan-out worker")

	go func() {
		for {
			select {
			case change := <-w.queue:
				w.Process(ctx, change)
			case <-ctx.Done():
				zap.L().Info("profile fan-out worker stopped")
				return
			}
		}
	}()
}

// Process runs one fan-out pass. Exits immediately when neither watched field
// changed, which also makes a second run with the same after-state a no-op.
func (w *FanoutWorker) Process(ctx context.Context, change domain.ProfileChange) {
	badgesChanged := change.BadgesChanged()
	identityChanged := change.IdentityChanged()
	if !badgesChanged && !identityChanged {
		return
	}

	after := change.After

	var wg sync.WaitGroup

	// Thoughts carry both watched fields, so any watched change rewrites them.
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := w.syncThoughts(ctx, after); err != nil {
			zap.L().Error("fanout: thought sync failed",
				zap.Uint("user_id", after.ID), zap.Error(err))
		}
	}()

	// The remaining copies hold challengeBadges only.
	if badgesChanged {
		wg.Add(3)
		go func() {
			defer wg.Done()
			if err := w.syncThreads(ctx, after); err != nil {
				zap.L().Error("fanout: thread sync failed",
					zap.Uint("user_id", after.ID), zap.Error(err))
			}
		}()
		go func() {
			defer wg.Done()
			if err := w.syncLeagueMembers(ctx, after); err != nil {
				zap.L().Error("fanout: league member sync failed",
					zap.Uint("user_id", after.ID), zap.Error(err))
			}
		}()
		go func() {
			defer wg.Done()
			if err := w.syncLeaderboards(ctx, after); err != nil {
				zap.L().Error("fanout: leaderboard sync failed",
					zap.Uint("user_id", after.ID), zap.Error(err))
			}
		}()
	}

	wg.Wait()
}

// syncThoughts rewrites the author fields on the user's newest posts only.
// The limit is an explicit bound against unbounded historical rewrites.
func (w *FanoutWorker) syncThoughts(ctx context.Context, user domain.UserProfile) error {
	ids, err := w.thoughts.FindRecentIDsByAuthor(ctx, user.ID, w.opts.ThoughtLimit)
	if err != nil {
		return err
	}

	for _, chunk := range chunkIDs(ids, w.opts.ChunkSize) {
		if err := w.thoughts.UpdateAuthorFields(ctx, chunk, user.ChallengeBadges, user.GameIdentity); err != nil {
			return err
		}
	}

	return nil
}

// syncThreads rewrites the per-thread participant badge map entry for this
// user. Unbounded: participant counts per thread are small.
func (w *FanoutWorker) syncThreads(ctx context.Context, user domain.UserProfile) error {
	threads, err := w.social.FindThreadsByParticipant(ctx, user.ID)
	if err != nil {
		return err
	}

	for _, thread := range threads {
		badges := thread.ParticipantBadges
		if badges == nil {
			badges = make(map[uint][]string)
		}
		badges[user.ID] = user.ChallengeBadges

		if err := w.social.UpdateThreadParticipantBadges(ctx, thread.ID, badges); err != nil {
			return err
		}
	}

	return nil
}

// syncLeagueMembers copies badges onto this user's member row in every league
// they belong to.
func (w *FanoutWorker) syncLeagueMembers(ctx context.Context, user domain.UserProfile) error {
	members, err := w.social.FindMembershipsByUser(ctx, user.ID)
	if err != nil {
		return err
	}

	for _, member := range members {
		if err := w.social.UpdateMemberBadges(ctx, member.ID, user.ChallengeBadges); err != nil {
			return err
		}
	}

	return nil
}

// syncLeaderboards scans every leaderboard's three score arrays and replaces
// the badge copy on entries owned by this user, writing touched boards back
// in chunks.
func (w *FanoutWorker) syncLeaderboards(ctx context.Context, user domain.UserProfile) error {
	boards, err := w.leaderboards.ListAll(ctx)
	if err != nil {
		return err
	}

	var touched []domain.Leaderboard
	for _, board := range boards {
		changed := false
		changed = replaceEntryBadges(board.AllTime, user.ID, user.ChallengeBadges) || changed
		changed = replaceEntryBadges(board.Eighteen, user.ID, user.ChallengeBadges) || changed
		changed = replaceEntryBadges(board.Nine, user.ID, user.ChallengeBadges) || changed
		if changed {
			touched = append(touched, board)
		}
	}

	for _, chunk := range chunkBoards(touched, w.opts.ChunkSize) {
		if err := w.leaderboards.SaveScoreArrays(ctx, chunk); err != nil {
			return err
		}
	}

	return nil
}

func replaceEntryBadges(entries []domain.LeaderboardEntry, userID uint, badges []string) bool {
	changed := false
	for i := range entries {
		if entries[i].UserID == userID {
			entries[i].ChallengeBadges = badges
			changed = true
		}
	}
	return changed
}

func chunkIDs(ids []uint, size int) [][]uint {
	var chunks [][]uint
	for len(ids) > size {
		chunks = append(chunks, ids[:size])
		ids = ids[size:]
	}
	if len(ids) > 0 {
		chunks = append(chunks, ids)
	}
	return chunks
}

func chunkBoards(boards []domain.Leaderboard, size int) [][]domain.Leaderboard {
	var chunks [][]domain.Leaderboard
	for len(boards) > size {
		chunks = append(chunks, boards[:size])
		boards = boards[size:]
	}
	if len(boards) > 0 {
		chunks = append(chunks, boards)
	}
	return chunks
}

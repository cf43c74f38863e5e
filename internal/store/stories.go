package store

import (
	"context"
	"log/slog"
	"sync"

	"github.com/samber/lo"

	"socialite/internal/core"
)

// Stories holds the latest fetched story list, grouped by author for
// display.
type Stories struct {
	Logger *slog.Logger
	API    core.StoryAPI

	mu      sync.RWMutex
	stories []core.Story

	fence *fence
}

func (s *Stories) Init(_ context.Context) error {
	s.Logger = s.Logger.With("component", "store.Stories")
	s.ensure()
	return nil
}

func (s *Stories) ensure() {
	if s.fence == nil {
		s.fence = newFence()
	}
}

func (s *Stories) Refresh(ctx context.Context) error {
	s.ensure()
	seq := s.fence.begin("stories")

	stories, err := s.API.Stories(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.fence.commit("stories", seq) {
		return nil
	}

	s.stories = stories
	return nil
}

// Create posts a new story and appends it locally.
func (s *Stories) Create(ctx context.Context, mediaURL string, kind core.MediaKind) (core.Story, error) {
	story, err := s.API.CreateStory(ctx, mediaURL, kind)
	if err != nil {
		return core.Story{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.stories = append(s.stories, story)
	return story, nil
}

// Delete removes an own story on the backend and filters it locally.
func (s *Stories) Delete(ctx context.Context, storyID string) error {
	if err := s.API.DeleteStory(ctx, storyID); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.stories = lo.Reject(s.stories, func(story core.Story, _ int) bool { return story.ID == storyID })
	return nil
}

// Groups returns the stories grouped by author. Group order follows the
// first appearance of each author; stories keep their original relative
// order inside a group.
func (s *Stories) Groups() []core.StoryGroup {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var order []string
	byAuthor := map[string]*core.StoryGroup{}

	for _, story := range s.stories {
		group, ok := byAuthor[story.AuthorID]
		if !ok {
			group = &core.StoryGroup{
				AuthorID:     story.AuthorID,
				AuthorName:   story.AuthorName,
				AuthorAvatar: story.AuthorAvatar,
			}
			byAuthor[story.AuthorID] = group
			order = append(order, story.AuthorID)
		}
		group.Stories = append(group.Stories, story)
	}

	return lo.Map(order, func(authorID string, _ int) core.StoryGroup {
		return *byAuthor[authorID]
	})
}

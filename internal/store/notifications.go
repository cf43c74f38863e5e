package store

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/samber/lo"

	"socialite/internal/core"
)

// Notifications holds the fetched notification list. Read flags mutate
// locally first; resolved follow requests are filtered out of the list.
type Notifications struct {
	Logger *slog.Logger
	API    core.NotificationAPI

	mu      sync.RWMutex
	list    []core.Notification
	page    int
	hasMore bool

	fence *fence
}

func (n *Notifications) Init(_ context.Context) error {
	n.Logger = n.Logger.With("component", "store.Notifications")
	n.ensure()
	return nil
}

func (n *Notifications) ensure() {
	if n.fence == nil {
		n.fence = newFence()
	}
}

func (n *Notifications) Refresh(ctx context.Context) error {
	n.ensure()
	seq := n.fence.begin("notifications")

	list, err := n.API.Notifications(ctx, 1)
	if err != nil {
		return err
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	if !n.fence.commit("notifications", seq) {
		return nil
	}

	n.list = list
	n.page = 1
	n.hasMore = len(list) == core.PageSize
	return nil
}

func (n *Notifications) LoadMore(ctx context.Context) error {
	n.mu.RLock()
	page := n.page + 1
	more := n.hasMore
	n.mu.RUnlock()

	if !more {
		return nil
	}

	items, err := n.API.Notifications(ctx, page)
	if err != nil {
		return err
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	seen := lo.SliceToMap(n.list, func(item core.Notification) (string, struct{}) { return item.ID, struct{}{} })
	for _, item := range items {
		if _, ok := seen[item.ID]; ok {
			continue
		}
		n.list = append(n.list, item)
	}
	n.page = page
	n.hasMore = len(items) == core.PageSize
	return nil
}

// MarkRead flips the local read flag immediately and confirms with the
// backend; a failed call is logged, the flag stays flipped.
func (n *Notifications) MarkRead(ctx context.Context, notificationID string) {
	n.mu.Lock()
	for i := range n.list {
		if n.list[i].ID == notificationID {
			n.list[i].Read = true
			break
		}
	}
	n.mu.Unlock()

	if err := n.API.MarkRead(ctx, notificationID); err != nil {
		n.Logger.Warn("failed to mark notification read", "id", notificationID, "error", err)
	}
}

func (n *Notifications) MarkAllRead(ctx context.Context) {
	n.mu.Lock()
	for i := range n.list {
		n.list[i].Read = true
	}
	n.mu.Unlock()

	if err := n.API.MarkAllRead(ctx); err != nil {
		n.Logger.Warn("failed to mark notifications read", "error", err)
	}
}

// ResolveFollowRequest accepts or rejects a pending follow request and,
// on success, removes its notification from the list.
func (n *Notifications) ResolveFollowRequest(ctx context.Context, userID string, accept bool) error {
	var err error
	if accept {
		err = n.API.AcceptFollowRequest(ctx, userID)
	} else {
		err = n.API.RejectFollowRequest(ctx, userID)
	}
	if err != nil {
		return err
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	n.list = lo.Reject(n.list, func(item core.Notification, _ int) bool {
		return item.Kind == core.NotificationFollowRequest && item.Actor.ID == userID
	})
	return nil
}

func (n *Notifications) List() []core.Notification {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return append([]core.Notification(nil), n.list...)
}

func (n *Notifications) UnreadCount() int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return lo.CountBy(n.list, func(item core.Notification) bool { return !item.Read })
}

func (n *Notifications) HasMore() bool {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.hasMore
}

// Describe renders the one-line summary for a notification. The switch is
// exhaustive over the notification kinds.
func Describe(n core.Notification) string {
	switch n.Kind {
	case core.NotificationLike:
		return fmt.Sprintf("%s liked your post", n.Actor.DisplayName)
	case core.NotificationFollow:
		return fmt.Sprintf("%s started following you", n.Actor.DisplayName)
	case core.NotificationFollowRequest:
		return fmt.Sprintf("%s requested to follow you", n.Actor.DisplayName)
	case core.NotificationComment:
		return fmt.Sprintf("%s commented on your post", n.Actor.DisplayName)
	default:
		return fmt.Sprintf("%s: %s", n.Actor.DisplayName, n.Kind)
	}
}

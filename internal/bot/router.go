package bot

import (
	"context"
	"fmt"
	"sync"

	"github.com/bwmarrin/discordgo"
)

// router hands incoming direct messages to the conversation waiting on
// their author. One inbox per user; messages arriving for a user with no
// open inbox are dropped.
type router struct {
	mu      sync.Mutex
	inboxes map[string]chan string
}

func newRouter() *router {
	return &router{inboxes: map[string]chan string{}}
}

func (r *router) open(userID string) (chan string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.inboxes[userID]; ok {
		return nil, fmt.Errorf("registration already in progress for %s", userID)
	}
	ch := make(chan string, 8)
	r.inboxes[userID] = ch
	return ch, nil
}

func (r *router) close(userID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.inboxes, userID)
}

func (r *router) deliver(userID, content string) {
	r.mu.Lock()
	ch, ok := r.inboxes[userID]
	r.mu.Unlock()
	if !ok {
		return
	}
	select {
	case ch <- content:
	default:
		// user is flooding faster than the conversation consumes; drop
	}
}

// dmMessenger adapts one user's DM channel to the conversation's
// Send/Await contract.
type dmMessenger struct {
	s         *discordgo.Session
	channelID string
	inbox     <-chan string
}

func (m *dmMessenger) Send(text string) error {
	_, err := m.s.ChannelMessageSend(m.channelID, text)
	return err
}

func (m *dmMessenger) Await(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case msg := <-m.inbox:
		return msg, nil
	}
}

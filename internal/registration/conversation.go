package registration

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"teamreg-bot/internal/models"
	"teamreg-bot/internal/util"
)

// Store is the record-store contract the conversation needs: a full read
// for duplicate scans and a single-row append.
type Store interface {
	ReadAll(ctx context.Context) ([][]string, error)
	Append(ctx context.Context, t models.Team) error
}

// Messenger is one user's private channel: outbound prompts and the next
// inbound reply. Await must honor ctx cancellation.
type Messenger interface {
	Send(text string) error
	Await(ctx context.Context) (string, error)
}

// Outcome is a conversation's terminal state as reported back to the
// trigger surface.
type Outcome int

const (
	// OutcomeSaved means the team was appended to the store.
	OutcomeSaved Outcome = iota
	// OutcomeDuplicateTag means the save was rejected because a player tag
	// is already registered; nothing was appended.
	OutcomeDuplicateTag
	// OutcomeAbandoned covers every other end: reply timeout, undeliverable
	// messages, store failures. The surface does not distinguish further.
	OutcomeAbandoned
)

// DefaultReplyTimeout bounds each wait for a user reply.
const DefaultReplyTimeout = 60 * time.Second

type state int

const (
	stateTeamName state = iota
	stateMembers
	stateReview
	stateSave
)

// Conversation drives one user's registration interview from the opening
// prompt to a terminal outcome. The team is assembled in memory and only
// reaches the store on a successful save.
type Conversation struct {
	store  Store
	msg    Messenger
	cache  *Cache
	userID string

	// ReplyTimeout is the per-prompt wait; tests shrink it.
	ReplyTimeout time.Duration

	team models.Team
}

func NewConversation(store Store, msg Messenger, cache *Cache, userID string) *Conversation {
	return &Conversation{
		store:        store,
		msg:          msg,
		cache:        cache,
		userID:       userID,
		ReplyTimeout: DefaultReplyTimeout,
	}
}

// Run executes the state machine. Any send/await/store failure ends the
// conversation as OutcomeAbandoned with the cause; no partial state is saved.
func (c *Conversation) Run(ctx context.Context) (Outcome, error) {
	if err := c.msg.Send("👋 Hi! Let's get your team registered."); err != nil {
		return OutcomeAbandoned, err
	}

	st := stateTeamName
	for {
		var err error
		switch st {
		case stateTeamName:
			err = c.collectTeamName(ctx)
			st = stateMembers
		case stateMembers:
			err = c.collectMembers(ctx)
			st = stateReview
		case stateReview:
			err = c.reviewLoop(ctx)
			st = stateSave
		case stateSave:
			return c.save(ctx)
		}
		if err != nil {
			return OutcomeAbandoned, err
		}
	}
}

// ask sends one prompt and waits for the user's next message, trimmed.
// This is the machine's single suspend point; timeout expiry surfaces as
// the Await error.
func (c *Conversation) ask(ctx context.Context, prompt string) (string, error) {
	if err := c.msg.Send(prompt); err != nil {
		return "", err
	}
	waitCtx, cancel := context.WithTimeout(ctx, c.ReplyTimeout)
	defer cancel()
	reply, err := c.msg.Await(waitCtx)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(reply), nil
}

// collectTeamName re-prompts until the user supplies a name not already
// taken, comparing case-insensitively against a snapshot read once here.
// The snapshot is not refreshed at save time, so two racing registrations
// can still claim the same name; only tags are re-checked before the append.
func (c *Conversation) collectTeamName(ctx context.Context) error {
	rows, err := c.store.ReadAll(ctx)
	if err != nil {
		return err
	}
	taken := TeamNames(rows)

	prompt := "📝 What's your **team name**?"
	for {
		name, err := c.ask(ctx, prompt)
		if err != nil {
			return err
		}
		if taken[util.FoldName(name)] {
			prompt = "⚠️ A team with this name already exists. Please choose another team name."
			continue
		}
		c.team.TeamName = name
		return nil
	}
}

func (c *Conversation) collectMembers(ctx context.Context) error {
	name, err := c.ask(ctx, "👤 Your full name:")
	if err != nil {
		return err
	}
	tag, err := c.ask(ctx, "🔖 Your Discord tag (e.g., PewPew#1234):")
	if err != nil {
		return err
	}
	c.team.Members[0] = models.Player{Name: name, Tag: tag}

	for i := 2; i <= models.TeamSize; i++ {
		name, err := c.ask(ctx, fmt.Sprintf("👤 Enter full name for Player %d:", i))
		if err != nil {
			return err
		}
		tag, err := c.ask(ctx, fmt.Sprintf("🔖 Enter Discord tag for Player %d (e.g., PewPew#1234):", i))
		if err != nil {
			return err
		}
		c.team.Members[i-1] = models.Player{Name: name, Tag: tag}
	}
	return nil
}

// reviewLoop shows the assembled team and loops on the edit question until
// the user declines further edits. A malformed player number cancels only
// that edit attempt and falls back to the summary.
func (c *Conversation) reviewLoop(ctx context.Context) error {
	for {
		if err := c.msg.Send(c.summary()); err != nil {
			return err
		}
		answer, err := c.ask(ctx, "✏️ Do you want to edit any player? (yes/no)")
		if err != nil {
			return err
		}
		yes, ok := util.ParseYesNo(answer)
		if !ok {
			if err := c.msg.Send("❓ Please answer with `yes` or `no`."); err != nil {
				return err
			}
			continue
		}
		if !yes {
			return nil
		}
		if err := c.editOne(ctx); err != nil {
			return err
		}
	}
}

func (c *Conversation) editOne(ctx context.Context) error {
	raw, err := c.ask(ctx, fmt.Sprintf("🔢 Enter the number of the player you want to edit (1-%d):", models.TeamSize))
	if err != nil {
		return err
	}
	num, convErr := strconv.Atoi(raw)
	if convErr != nil || num < 1 || num > models.TeamSize {
		return c.msg.Send(fmt.Sprintf("❌ Invalid number. Please enter 1 to %d.", models.TeamSize))
	}

	name, err := c.ask(ctx, fmt.Sprintf("👤 New name for Player %d:", num))
	if err != nil {
		return err
	}
	tag, err := c.ask(ctx, fmt.Sprintf("🔖 New tag for Player %d:", num))
	if err != nil {
		return err
	}
	c.team.Members[num-1] = models.Player{Name: name, Tag: tag}
	return c.msg.Send("✅ Player updated!")
}

func (c *Conversation) summary() string {
	b := strings.Builder{}
	b.WriteString("📋 Here's your current team:\n\n")
	b.WriteString("**Team Name:** " + c.team.TeamName + "\n")
	for i, m := range c.team.Members {
		b.WriteString(fmt.Sprintf("\nPlayer %d\nName: %s\nUsername: %s\n", i+1, m.Name, m.Tag))
	}
	return b.String()
}

// save re-reads the whole sheet, rejects the registration if any of its
// tags is already stored, and otherwise appends the row and caches the
// result for this user.
func (c *Conversation) save(ctx context.Context) (Outcome, error) {
	rows, err := c.store.ReadAll(ctx)
	if err != nil {
		return OutcomeAbandoned, err
	}
	taken := Tags(rows)
	for _, m := range c.team.Members {
		if taken[m.Tag] {
			_ = c.msg.Send("❌ A player in this team is already registered. Please double-check your players.")
			return OutcomeDuplicateTag, nil
		}
	}

	if err := c.store.Append(ctx, c.team); err != nil {
		return OutcomeAbandoned, err
	}
	if c.cache != nil {
		c.cache.Put(c.userID, c.team)
	}
	_ = c.msg.Send("✅ Final team saved! Thank you for registering.")
	return OutcomeSaved, nil
}

package bot

import (
	"context"
	"log"

	"github.com/bwmarrin/discordgo"

	"teamreg-bot/internal/config"
	"teamreg-bot/internal/registration"
	"teamreg-bot/internal/util"
)

const registerButtonID = "register_button"

var commands = []*discordgo.ApplicationCommand{
	{
		Name:        "setup",
		Description: "Post the team registration button in this channel",
	},
	{
		Name:        "export",
		Description: "Get a CSV download link for all registered teams (admins)",
	},
}

// App is the Discord surface: it owns the gateway session, posts the
// registration button, and spawns one Conversation per button press.
type App struct {
	cfg    config.Config
	s      *discordgo.Session
	store  registration.Store
	cache  *registration.Cache
	router *router

	// runCtx bounds spawned conversations to the bot's lifetime.
	runCtx context.Context
}

func New(cfg config.Config, store registration.Store, cache *registration.Cache) (*App, error) {
	s, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		return nil, err
	}
	s.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsDirectMessages |
		discordgo.IntentsMessageContent

	a := &App{
		cfg:    cfg,
		s:      s,
		store:  store,
		cache:  cache,
		router: newRouter(),
		runCtx: context.Background(),
	}
	s.AddHandler(a.onReady)
	s.AddHandler(a.onInteractionCreate)
	s.AddHandler(a.onMessageCreate)
	return a, nil
}

// Run opens the gateway connection, registers the slash commands and blocks
// until ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	a.runCtx = ctx
	if err := a.s.Open(); err != nil {
		return err
	}
	defer a.s.Close()

	for _, cmd := range commands {
		if _, err := a.s.ApplicationCommandCreate(a.s.State.User.ID, a.cfg.GuildID, cmd); err != nil {
			log.Printf("register /%s: %v", cmd.Name, err)
		}
	}

	<-ctx.Done()
	return ctx.Err()
}

func (a *App) onReady(s *discordgo.Session, r *discordgo.Ready) {
	log.Printf("logged in as %s#%s", s.State.User.Username, s.State.User.Discriminator)
}

func (a *App) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot || m.GuildID != "" {
		return
	}
	// a DM: route it to whichever conversation awaits this user
	a.router.deliver(m.Author.ID, m.Content)
}

func (a *App) onInteractionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		switch i.ApplicationCommandData().Name {
		case "setup":
			a.handleSetup(i)
		case "export":
			a.handleExport(i)
		}
	case discordgo.InteractionMessageComponent:
		if i.MessageComponentData().CustomID == registerButtonID {
			a.handleRegisterButton(i)
		}
	}
}

// handleSetup posts the persistent registration prompt. The button stays
// clickable indefinitely since it is matched by custom ID, not by message.
func (a *App) handleSetup(i *discordgo.InteractionCreate) {
	err := a.s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: "🎫 Click below to register your team:",
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{
					Components: []discordgo.MessageComponent{
						discordgo.Button{
							Label:    "Register",
							Style:    discordgo.PrimaryButton,
							Emoji:    &discordgo.ComponentEmoji{Name: "📩"},
							CustomID: registerButtonID,
						},
					},
				},
			},
		},
	})
	if err != nil {
		log.Printf("setup respond: %v", err)
	}
}

func (a *App) handleExport(i *discordgo.InteractionCreate) {
	user := interactionUser(i)
	if user == nil || !a.cfg.AdminUserIDs[user.ID] {
		a.respondEphemeral(i, "⛔ You are not allowed to export registrations.")
		return
	}
	token := util.HMACSHA256Hex(a.cfg.ExportTokenSecret, "export:teams")
	base := a.cfg.BasePublicURL
	if base == "" {
		base = "http://localhost" + a.cfg.HTTPAddr
	}
	a.respondEphemeral(i, "📤 CSV export: "+base+"/export/teams.csv?token="+token)
}

// handleRegisterButton acknowledges the press immediately, then runs the
// whole DM interview in its own goroutine; the outcome arrives later as an
// ephemeral followup.
func (a *App) handleRegisterButton(i *discordgo.InteractionCreate) {
	user := interactionUser(i)
	if user == nil {
		return
	}
	a.respondEphemeral(i, "📩 Starting your registration — check your DMs!")
	go a.runRegistration(i.Interaction, user)
}

func (a *App) runRegistration(inter *discordgo.Interaction, user *discordgo.User) {
	followup := func(content string) {
		_, err := a.s.FollowupMessageCreate(inter, true, &discordgo.WebhookParams{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		})
		if err != nil {
			log.Printf("followup: %v", err)
		}
	}

	inbox, err := a.router.open(user.ID)
	if err != nil {
		followup("⚠️ You already have a registration in progress. Finish that one first.")
		return
	}
	defer a.router.close(user.ID)

	ch, err := a.s.UserChannelCreate(user.ID)
	if err != nil {
		followup("❌ Could not send DM. Please enable DMs from server members.")
		return
	}

	conv := registration.NewConversation(a.store, &dmMessenger{s: a.s, channelID: ch.ID, inbox: inbox}, a.cache, user.ID)
	outcome, err := conv.Run(a.runCtx)
	if err != nil {
		log.Printf("registration for %s ended: %v", user.ID, err)
	}

	switch outcome {
	case registration.OutcomeSaved:
		followup("✅ Check your DMs! Team registration completed.")
	case registration.OutcomeDuplicateTag:
		followup("⚠️ Registration canceled due to duplicate player.")
	default:
		followup("❌ Could not complete registration over DM. Please enable DMs from server members and try again.")
	}
}

func (a *App) respondEphemeral(i *discordgo.InteractionCreate, content string) {
	err := a.s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Printf("interaction respond: %v", err)
	}
}

func interactionUser(i *discordgo.InteractionCreate) *discordgo.User {
	if i.Member != nil {
		return i.Member.User
	}
	return i.User
}

package config

import (
	"fmt"
	"os"
	"strings"
)

type Config struct {
	DiscordToken string

	SpreadsheetID         string
	GoogleCredentialsPath string
	SheetName             string

	GuildID      string
	AdminUserIDs map[string]bool

	ExportTokenSecret string

	HTTPAddr      string
	BasePublicURL string
}

func FromEnv() (Config, error) {
	var c Config
	c.DiscordToken = strings.TrimSpace(os.Getenv("DISCORD_BOT_TOKEN"))
	c.SpreadsheetID = strings.TrimSpace(os.Getenv("GOOGLE_SHEETS_SPREADSHEET_ID"))
	c.GoogleCredentialsPath = strings.TrimSpace(os.Getenv("GOOGLE_CREDENTIALS_PATH"))

	c.SheetName = strings.TrimSpace(os.Getenv("SHEET_NAME"))
	if c.SheetName == "" {
		c.SheetName = "Valorant Teams Data"
	}

	c.GuildID = strings.TrimSpace(os.Getenv("GUILD_ID"))

	c.ExportTokenSecret = strings.TrimSpace(os.Getenv("EXPORT_TOKEN_SECRET"))
	if c.ExportTokenSecret == "" {
		c.ExportTokenSecret = "change-me"
	}

	c.HTTPAddr = strings.TrimSpace(os.Getenv("HTTP_ADDR"))
	if c.HTTPAddr == "" {
		c.HTTPAddr = ":8080"
	}

	c.BasePublicURL = strings.TrimRight(strings.TrimSpace(os.Getenv("BASE_PUBLIC_URL")), "/")

	if c.DiscordToken == "" {
		return c, fmt.Errorf("DISCORD_BOT_TOKEN is empty")
	}
	if c.SpreadsheetID == "" {
		return c, fmt.Errorf("GOOGLE_SHEETS_SPREADSHEET_ID is empty")
	}
	if c.GoogleCredentialsPath == "" {
		return c, fmt.Errorf("GOOGLE_CREDENTIALS_PATH is empty")
	}

	c.AdminUserIDs = parseAdminIDs(os.Getenv("ADMIN_USER_IDS"))

	return c, nil
}

func parseAdminIDs(raw string) map[string]bool {
	m := map[string]bool{}
	for _, p := range strings.Split(raw, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		m[p] = true
	}
	return m
}

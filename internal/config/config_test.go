package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("DISCORD_BOT_TOKEN", "tok")
	t.Setenv("GOOGLE_SHEETS_SPREADSHEET_ID", "sheet-id")
	t.Setenv("GOOGLE_CREDENTIALS_PATH", "/tmp/creds.json")
}

func TestFromEnv_Defaults(t *testing.T) {
	setRequired(t)
	t.Setenv("SHEET_NAME", "")
	t.Setenv("HTTP_ADDR", "")
	t.Setenv("EXPORT_TOKEN_SECRET", "")
	t.Setenv("ADMIN_USER_IDS", "")

	c, err := FromEnv()
	require.NoError(t, err)
	require.Equal(t, "tok", c.DiscordToken)
	require.Equal(t, "Valorant Teams Data", c.SheetName)
	require.Equal(t, ":8080", c.HTTPAddr)
	require.Equal(t, "change-me", c.ExportTokenSecret)
	require.Empty(t, c.AdminUserIDs)
}

func TestFromEnv_MissingRequired(t *testing.T) {
	for _, key := range []string{"DISCORD_BOT_TOKEN", "GOOGLE_SHEETS_SPREADSHEET_ID", "GOOGLE_CREDENTIALS_PATH"} {
		t.Run(key, func(t *testing.T) {
			setRequired(t)
			t.Setenv(key, "")
			_, err := FromEnv()
			require.Error(t, err)
			require.Contains(t, err.Error(), key)
		})
	}
}

func TestFromEnv_AdminIDsAndBaseURL(t *testing.T) {
	setRequired(t)
	t.Setenv("ADMIN_USER_IDS", " 111 ,222,, 333 ")
	t.Setenv("BASE_PUBLIC_URL", "https://bot.example.com/")

	c, err := FromEnv()
	require.NoError(t, err)
	require.Equal(t, map[string]bool{"111": true, "222": true, "333": true}, c.AdminUserIDs)
	require.Equal(t, "https://bot.example.com", c.BasePublicURL)
}

package server

import (
	"fmt"
	"net/http"
	"strings"

	"teamreg-bot/internal/config"
	"teamreg-bot/internal/models"
	"teamreg-bot/internal/registration"
	"teamreg-bot/internal/util"
)

// New builds the sidecar HTTP server: a liveness probe at the root plus a
// token-guarded CSV export of all registered teams. It serves regardless
// of the Discord connection's state.
func New(cfg config.Config, store registration.Store) *http.Server {
	return &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: Handler(cfg, store),
	}
}

func Handler(cfg config.Config, store registration.Store) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "I'm alive!")
	})

	mux.HandleFunc("/export/teams.csv", func(w http.ResponseWriter, r *http.Request) {
		token := r.URL.Query().Get("token")
		if token == "" {
			http.Error(w, "token required", http.StatusBadRequest)
			return
		}
		expected := util.HMACSHA256Hex(cfg.ExportTokenSecret, "export:teams")
		if token != expected {
			http.Error(w, "invalid token", http.StatusForbidden)
			return
		}
		rows, err := store.ReadAll(r.Context())
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="teams.csv"`)
		_, _ = w.Write([]byte(BuildTeamsCSV(rows)))
	})

	return mux
}

// BuildTeamsCSV renders stored rows as CSV, skipping rows too short to be
// a full team.
func BuildTeamsCSV(rows [][]string) string {
	b := strings.Builder{}
	b.WriteString("team,player1,tag1,player2,tag2,player3,tag3,player4,tag4,player5,tag5")
	for _, row := range rows {
		t, err := models.TeamFromRow(row)
		if err != nil {
			continue
		}
		cells := make([]string, 0, models.RowWidth)
		cells = append(cells, util.EscapeCSV(t.TeamName))
		for _, m := range t.Members {
			cells = append(cells, util.EscapeCSV(m.Name), util.EscapeCSV(m.Tag))
		}
		b.WriteString("\n")
		b.WriteString(strings.Join(cells, ","))
	}
	return b.String()
}

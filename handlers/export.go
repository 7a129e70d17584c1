// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"encoding/csv"
	"log/slog"
	"net/http"
	"strconv"
	"time"
)

// Export handles GET /admin/export
// Streams the ranked results as a CSV download.
func (h *AdminHandler) Export(w http.ResponseWriter, r *http.Request) {
	ranked := h.quiz.Ranked()

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="results.csv"`)
	w.WriteHeader(http.StatusOK)

	cw := csv.NewWriter(w)
	record := []string{"rank", "teamId", "round", "score", "timeTakenMs", "submittedAt"}
	if err := cw.Write(record); err != nil {
		slog.Error("export write failed", "error", err)
		return
	}

	for i, e := range ranked {
		record = []string{
			strconv.Itoa(i + 1),
			e.TeamID,
			e.Round,
			strconv.Itoa(e.Score),
			strconv.FormatInt(e.TimeTaken, 10),
			e.SubmittedAt.Format(time.RFC3339),
		}
		if err := cw.Write(record); err != nil {
			slog.Error("export write failed", "error", err)
			return
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		slog.Error("export flush failed", "error", err)
	}
}

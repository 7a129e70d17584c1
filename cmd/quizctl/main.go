// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Command quizctl gives operators a terminal view of a quizhost data
// directory: ranked standings and currently logged-in teams.
//
//	quizctl -data ./data standings
//	quizctl -data ./data teams
//	quizctl -store sqlite -d ./data/quizhost.db standings
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	_ "github.com/lib/pq"
	"github.com/olekukonko/tablewriter"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/quizhost/models"
	"github.com/danielhkuo/quizhost/quiz"
	"github.com/danielhkuo/quizhost/store"
)

func main() {
	storeType := flag.String("store", "file", "Store backend (file, sqlite, or postgres)")
	dataDir := flag.String("data", "data", "Data directory for the file store")
	dsn := flag.String("d", "", "Database path/URL for the sqlite or postgres store")
	flag.Parse()

	cmd := flag.Arg(0)
	if cmd == "" {
		fmt.Fprintln(os.Stderr, "usage: quizctl [flags] standings|teams|selected")
		os.Exit(2)
	}

	st, err := openStore(*storeType, *dataDir, *dsn)
	if err != nil {
		color.Red("Failed to open store: %v", err)
		os.Exit(1)
	}
	defer st.Close()

	switch cmd {
	case "standings":
		standings(st)
	case "teams":
		teams(st)
	case "selected":
		selected(st)
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n", cmd)
		os.Exit(2)
	}
}

func openStore(storeType, dataDir, dsn string) (store.Store, error) {
	switch storeType {
	case "sqlite":
		if dsn == "" {
			dsn = dataDir + "/quizhost.db"
		}
		return store.OpenSQL("sqlite", dsn)
	case "postgres":
		return store.OpenSQL("postgres", dsn)
	default:
		return store.OpenFile(dataDir)
	}
}

func standings(st store.Store) {
	doc := models.ScoresDoc{Entries: []models.ScoreEntry{}}
	st.Read(store.KeyScores, &doc)

	color.Yellow("\nStandings (%d submissions)", len(doc.Entries))

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Rank", "Team", "Round", "Score", "Time Taken", "Submitted"})

	for i, e := range quiz.Rank(doc.Entries) {
		table.Append([]string{
			fmt.Sprintf("%d", i+1),
			e.TeamID,
			e.Round,
			fmt.Sprintf("%d", e.Score),
			(time.Duration(e.TimeTaken) * time.Millisecond).String(),
			humanize.Time(e.SubmittedAt),
		})
	}

	table.Render()
}

func teams(st store.Store) {
	doc := models.LoginTrackerDoc{LoggedInTeams: []models.Session{}}
	st.Read(store.KeyLoginTracker, &doc)

	color.Yellow("\nLogged-in Teams (%d)", len(doc.LoggedInTeams))

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Team", "Question Set", "Logged In", "Score", "Finished"})

	for _, s := range doc.LoggedInTeams {
		set := "-"
		if s.QuestionSet != nil {
			set = *s.QuestionSet
		}
		score := "-"
		if s.Score != nil {
			score = fmt.Sprintf("%d", *s.Score)
		}
		finished := "no"
		if s.EndTime != nil {
			finished = humanize.Time(*s.EndTime)
		}
		table.Append([]string{s.TeamID, set, humanize.Time(s.LoginTime), score, finished})
	}

	table.Render()
}

func selected(st store.Store) {
	doc := models.SelectedTeamsDoc{SelectedTeams: []string{}}
	st.Read(store.KeySelectedTeams, &doc)

	color.Yellow("\nSelected Teams (%d)", len(doc.SelectedTeams))
	for i, id := range doc.SelectedTeams {
		fmt.Printf("%3d. %s\n", i+1, id)
	}
}

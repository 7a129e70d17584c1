package models

import (
	"time"
	"unicode"
)

// Round identifiers
const (
	Round1 = "round1"
	Round2 = "round2"
	Round3 = "round3"
)

// Rounds enumerates the valid round identifiers in progression order.
var Rounds = []string{Round1, Round2, Round3}

// ValidRound reports whether id is one of the enumerated rounds.
func ValidRound(id string) bool {
	for _, r := range Rounds {
		if r == id {
			return true
		}
	}
	return false
}

// Signal flag names
const (
	FlagResultsPublished = "results-published"
	FlagForceRedirect    = "force-redirect"
	FlagStartQuiz        = "start-quiz"
)

// Flags enumerates the valid signal flag names.
var Flags = []string{FlagResultsPublished, FlagForceRedirect, FlagStartQuiz}

// AssignQuestionSet maps a registration number and active round to a
// question-set tag. Round 1 serves a single fixed payload for everyone;
// later rounds split on the parity of the last digit of the registration
// number (even -> set a, odd -> set b). A registration with no digits
// falls into set a.
func AssignQuestionSet(regNum, round string) string {
	if round == Round1 {
		return Round1
	}
	for i := len(regNum) - 1; i >= 0; i-- {
		c := rune(regNum[i])
		if unicode.IsDigit(c) {
			if (c-'0')%2 == 0 {
				return round + "a"
			}
			return round + "b"
		}
	}
	return round + "a"
}

// Domain types

// Answer is one entry of a team's detailed answer list. The server treats
// it as an opaque record; it is stored and echoed back as submitted.
type Answer struct {
	Question  string `json:"question"`
	Selected  string `json:"selected"`
	Correct   string `json:"correct,omitempty"`
	IsCorrect bool   `json:"isCorrect"`
}

// Session is the per-team mutable record held by the login tracker.
// At most one session exists per team identifier.
type Session struct {
	TeamID          string     `json:"teamId"`
	RegNum          string     `json:"regNum"`
	LoginTime       time.Time  `json:"loginTime"`
	QuizStartTime   *time.Time `json:"quizStartTime,omitempty"`
	EndTime         *time.Time `json:"endTime,omitempty"`
	TimeTaken       *int64     `json:"timeTaken,omitempty"` // milliseconds
	Score           *int       `json:"score,omitempty"`
	DetailedAnswers []Answer   `json:"detailedAnswers,omitempty"`
	QuestionSet     *string    `json:"questionSet,omitempty"`
}

// ScoreEntry is one record of the score document. Entries are keyed by
// team and round: a repeat submission for the same pair replaces the
// earlier entry rather than appending a duplicate.
type ScoreEntry struct {
	ID              string     `json:"id"`
	TeamID          string     `json:"teamId"`
	Round           string     `json:"round"`
	Score           int        `json:"score"`
	TimeTaken       int64      `json:"timeTaken"` // milliseconds
	QuizStartTime   *time.Time `json:"quizStartTime,omitempty"`
	SubmittedAt     time.Time  `json:"submittedAt"`
	DetailedAnswers []Answer   `json:"detailedAnswers,omitempty"`
}

// Persisted document shapes

type LoginTrackerDoc struct {
	LoggedInTeams []Session `json:"loggedInTeams"`
}

type SelectedTeamsDoc struct {
	SelectedTeams []string `json:"selectedTeams"`
}

type ScoresDoc struct {
	Entries []ScoreEntry `json:"entries"`
}

// Request types

type LoginRequest struct {
	TeamID string `json:"teamId"`
	RegNum string `json:"regNum"`
}

type SubmitQuizRequest struct {
	TeamID          string     `json:"teamId"`
	Score           int        `json:"score"`
	TimeTaken       int64      `json:"timeTaken"`
	QuizStartTime   *time.Time `json:"quizStartTime,omitempty"`
	DetailedAnswers []Answer   `json:"detailedAnswers"`
}

type LiveUpdateRequest struct {
	TeamID          string   `json:"teamId"`
	DetailedAnswers []Answer `json:"detailedAnswers"`
}

type AdminLoginRequest struct {
	Password string `json:"password"`
}

type SetRoundRequest struct {
	Round string `json:"round"`
}

type FinalizeSelectionsRequest struct {
	SelectedTeams []string `json:"selectedTeams"`
}

type RemoveTeamRequest struct {
	TeamID string `json:"teamId"`
}

type RemoveTeamsBatchRequest struct {
	TeamIDs []string `json:"teamIds"`
}

// Response types

// BasicResponse is the common success/message envelope. Business-rule
// rejections (already participated, bad credentials) use this with a 200
// status and Success set to false, so clients can tell a refused request
// from a malformed one.
type BasicResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type LoginResponse struct {
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	TeamID      string `json:"teamId,omitempty"`
	QuestionSet string `json:"questionSet,omitempty"`
}

type StatusResponse struct {
	ActiveRound      string `json:"activeRound"`
	ResultsPublished bool   `json:"resultsPublished"`
	ForceRedirect    bool   `json:"forceRedirect"`
	StartQuiz        bool   `json:"startQuiz"`
}

type FlagStatusResponse struct {
	Success bool   `json:"success"`
	Flag    string `json:"flag"`
	Active  bool   `json:"active"`
}

type LoggedTeamsResponse struct {
	Success       bool      `json:"success"`
	TotalLoggedIn int       `json:"totalLoggedIn"`
	Teams         []Session `json:"teams"`
}

type SelectedTeamsResponse struct {
	Success       bool     `json:"success"`
	SelectedTeams []string `json:"selectedTeams"`
}

type RemoveBatchResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Removed int    `json:"removed"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

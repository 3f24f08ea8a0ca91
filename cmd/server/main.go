// Command server exposes the tokenizer over HTTP for editor
// integrations and reader frontends.
package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/cors"

	"github.com/samskrita/sandhi/pkg/db"
	"github.com/samskrita/sandhi/pkg/dictionary"
	"github.com/samskrita/sandhi/pkg/grammar"
	"github.com/samskrita/sandhi/pkg/tokenizer"

	_ "github.com/mattn/go-sqlite3"
)

type server struct {
	tok      *tokenizer.Tokenizer
	vibhakti *grammar.VibhaktiAnalyzer
	pratyaya *grammar.PratyayaAnalyzer
}

func main() {
	addrFlag := flag.String("addr", ":8080", "Listen address")
	dbFlag := flag.String("db", "sandhi.db", "Path to SQLite frequency database")
	dictFlag := flag.String("dict", "", "Path to a word list to load into the dictionary")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	conn, err := sql.Open("sqlite3", *dbFlag)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer conn.Close()

	if err := db.InitDB(conn); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	dict := dictionary.New()
	err = db.AllWords(conn, func(word string, frequency int) error {
		dict.AddN(word, frequency)
		return nil
	})
	if err != nil {
		log.Fatalf("Failed to load word frequencies: %v", err)
	}
	if *dictFlag != "" {
		if err := dict.LoadWordList(*dictFlag); err != nil {
			log.Fatalf("Failed to load word list: %v", err)
		}
	}

	tok, err := tokenizer.New(dict, tokenizer.DefaultOptions())
	if err != nil {
		log.Fatalf("Failed to create tokenizer: %v", err)
	}

	s := &server{
		tok:      tok,
		vibhakti: grammar.NewVibhaktiAnalyzer(),
		pratyaya: grammar.NewPratyayaAnalyzer(),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/tokenize", s.handleTokenize)
	mux.HandleFunc("/api/split", s.handleSplit)
	mux.HandleFunc("/api/vibhakti", s.handleVibhakti)
	mux.HandleFunc("/api/pratyaya", s.handlePratyaya)
	mux.HandleFunc("/api/stats", s.handleStats)

	httpServer := &http.Server{
		Addr:         *addrFlag,
		Handler:      cors.Default().Handler(mux),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("Shutdown error: %v", err)
		}
	}()

	log.Printf("Listening on %s (dictionary: %d words)", *addrFlag, dict.Size())
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("Server failed: %v", err)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// textParam reads the named parameter from the query string or, for
// POST requests, from a JSON object body.
func textParam(r *http.Request, name string) (string, error) {
	if v := r.URL.Query().Get(name); v != "" {
		return v, nil
	}
	if r.Method != http.MethodPost {
		return "", fmt.Errorf("missing %q parameter", name)
	}
	var body map[string]string
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("invalid JSON body: %w", err)
	}
	if body[name] == "" {
		return "", fmt.Errorf("missing %q parameter", name)
	}
	return body[name], nil
}

type tokenizeResponse struct {
	Tokens  []string `json:"tokens"`
	Words   []string `json:"words"`
	Valid   bool     `json:"valid"`
	Rebuilt string   `json:"rebuilt"`
}

func (s *server) handleTokenize(w http.ResponseWriter, r *http.Request) {
	text, err := textParam(r, "text")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	tokens := s.tok.Tokenize(text)
	ok, _ := s.tok.VerifyIntegrity(text, tokens)

	var words []string
	for _, t := range tokens {
		if strings.TrimSpace(t) != "" {
			words = append(words, t)
		}
	}
	writeJSON(w, http.StatusOK, tokenizeResponse{
		Tokens:  tokens,
		Words:   words,
		Valid:   ok,
		Rebuilt: s.tok.Detokenize(tokens),
	})
}

type splitCandidate struct {
	Left     string  `json:"left"`
	Right    string  `json:"right,omitempty"`
	RuleID   string  `json:"rule_id"`
	Priority int     `json:"priority"`
	Score    float64 `json:"score"`
}

func (s *server) handleSplit(w http.ResponseWriter, r *http.Request) {
	word, err := textParam(r, "word")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	candidates := s.tok.Engine().FindAllSplits(word, 10)
	out := make([]splitCandidate, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, splitCandidate{
			Left:     c.Left,
			Right:    c.Right,
			RuleID:   c.RuleID,
			Priority: c.RulePriority,
			Score:    c.Score,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"word": word, "candidates": out})
}

type vibhaktiReading struct {
	Stem       string  `json:"stem"`
	Ending     string  `json:"ending"`
	Case       string  `json:"case"`
	Number     string  `json:"number"`
	Confidence float64 `json:"confidence"`
}

func (s *server) handleVibhakti(w http.ResponseWriter, r *http.Request) {
	word, err := textParam(r, "word")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	analyses := s.vibhakti.Analyze(word)
	out := make([]vibhaktiReading, 0, len(analyses))
	for _, a := range analyses {
		out = append(out, vibhaktiReading{
			Stem:       a.Stem,
			Ending:     a.Ending,
			Case:       a.Case.String(),
			Number:     a.Number.String(),
			Confidence: a.Confidence,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"word": word, "readings": out})
}

type pratyayaReading struct {
	Base       string  `json:"base"`
	Suffix     string  `json:"suffix"`
	Type       string  `json:"type"`
	Class      string  `json:"class"`
	Meaning    string  `json:"meaning"`
	Confidence float64 `json:"confidence"`
}

func (s *server) handlePratyaya(w http.ResponseWriter, r *http.Request) {
	word, err := textParam(r, "word")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	analyses := s.pratyaya.Analyze(word)
	out := make([]pratyayaReading, 0, len(analyses))
	for _, a := range analyses {
		out = append(out, pratyayaReading{
			Base:       a.Base,
			Suffix:     a.Suffix,
			Type:       a.Type.String(),
			Class:      a.Class.String(),
			Meaning:    a.Meaning,
			Confidence: a.Confidence,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"word": word, "readings": out})
}

func (s *server) handleStats(w http.ResponseWriter, r *http.Request) {
	st := s.tok.Statistics()
	writeJSON(w, http.StatusOK, map[string]any{
		"dictionary_size": st.DictionarySize,
		"rule_count":      st.RuleCount,
		"sandhi_enabled":  st.SandhiEnabled,
		"samasa_enabled":  st.SamasaEnabled,
		"verification": map[string]any{
			"total":        st.Verification.Total,
			"successful":   st.Verification.Successful,
			"failed":       st.Verification.Failed,
			"success_rate": st.Verification.SuccessRate,
		},
	})
}

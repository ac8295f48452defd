// Command server exposes the grammaticality checker as a JSON REST API.
//
// Endpoints:
//
//	POST /api/check    body: {"tokens":[{"surface":"he","tag":"PRP","morph":{…}},…]}
//	GET  /api/grammar
package main

import (
	"encoding/json"
	"flag"
	"log"
	"net/http"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/cors"

	"github.com/mbreuer/gramcheck"
	"github.com/mbreuer/gramcheck/agree"
	"github.com/mbreuer/gramcheck/grammar"
	"github.com/mbreuer/gramcheck/pipeline"
)

// ---- JSON response types ------------------------------------------------

type checkResponse struct {
	Grammatical bool     `json:"grammatical"`
	Recognized  bool     `json:"recognized"`
	Tags        []string `json:"tags"`
	Bracket     string   `json:"bracket,omitempty"`
	Violations  []string `json:"violations,omitempty"`
}

type grammarResponse struct {
	Name      string   `json:"name"`
	Rules     int      `json:"rules"`
	Start     string   `json:"start"`
	Terminals []string `json:"terminals"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ---- helpers ------------------------------------------------------------

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode error: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// ---- handlers -----------------------------------------------------------

func handleCheck(checker *pipeline.Checker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "POST required")
			return
		}
		var body struct {
			Tokens []gramcheck.Token `json:"tokens"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || len(body.Tokens) == 0 {
			writeError(w, http.StatusBadRequest, "body must be JSON with a non-empty 'tokens' field")
			return
		}
		result, err := checker.Check(body.Tokens)
		if err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, gramcheck.ErrInput) {
				status = http.StatusBadRequest
			}
			writeError(w, status, err.Error())
			return
		}
		violations := make([]string, 0, len(result.Violations))
		for _, v := range result.Violations {
			violations = append(violations, v.String())
		}
		writeJSON(w, http.StatusOK, checkResponse{
			Grammatical: result.Grammatical,
			Recognized:  result.Recognized,
			Tags:        result.Tags,
			Bracket:     result.Bracket,
			Violations:  violations,
		})
	}
}

func handleGrammar(g *grammar.Grammar) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		writeJSON(w, http.StatusOK, grammarResponse{
			Name:      g.Name,
			Rules:     g.Size(),
			Start:     g.Start().Name,
			Terminals: g.Terminals(),
		})
	}
}

// ---- main ---------------------------------------------------------------

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	grammarFile := flag.String("grammar", "", "grammar file, default: built-in English")
	framesFile := flag.String("frames", "", "verb frame table (JSON), default: built-in")
	flag.Parse()

	var opts []pipeline.Option
	if *grammarFile != "" {
		text, err := os.ReadFile(*grammarFile)
		if err != nil {
			log.Fatalf("failed to read grammar: %v", err)
		}
		g, err := grammar.Parse(*grammarFile, string(text))
		if err != nil {
			log.Fatalf("failed to parse grammar: %v", err)
		}
		opts = append(opts, pipeline.WithGrammar(g))
	}
	if *framesFile != "" {
		f, err := os.Open(*framesFile)
		if err != nil {
			log.Fatalf("failed to open frame table: %v", err)
		}
		frames, err := agree.LoadFrames(f)
		f.Close()
		if err != nil {
			log.Fatalf("failed to load frame table: %v", err)
		}
		opts = append(opts, pipeline.WithFrames(frames))
	}

	checker, err := pipeline.New(opts...)
	if err != nil {
		log.Fatalf("failed to build checker: %v", err)
	}
	log.Printf("checker ready, grammar %q", checker.Grammar().Name)

	mux := http.NewServeMux()
	mux.HandleFunc("/api/check", handleCheck(checker))
	mux.HandleFunc("/api/grammar", handleGrammar(checker.Grammar()))
	handler := cors.Default().Handler(mux)

	log.Printf("listening on %s", *addr)
	if err := http.ListenAndServe(*addr, handler); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

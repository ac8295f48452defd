package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"

	"github.com/mbreuer/gramcheck"
	"github.com/mbreuer/gramcheck/agree"
	"github.com/mbreuer/gramcheck/grammar"
	"github.com/mbreuer/gramcheck/pipeline"
)

func main() {
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Error", "Trace level [Debug|Info|Error]")
	grammarFile := flag.String("grammar", "", "Grammar file (textual rule format), default: built-in English")
	framesFile := flag.String("frames", "", "Verb subcategorization frames (JSON), default: built-in")
	flag.Parse()
	tracer().SetTraceLevel(tracing.TraceLevelFromString(*tlevel))

	checker, err := makeChecker(*grammarFile, *framesFile)
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}

	input := strings.TrimSpace(strings.Join(flag.Args(), " "))
	if input != "" {
		if !check(checker, input) {
			os.Exit(2)
		}
		return
	}

	// no arguments: go interactive
	pterm.Info.Println("Enter tagged sentences as surface/TAG pairs, quit with <ctrl>D")
	repl, err := readline.New("gramcheck> ")
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(3)
	}
	for {
		line, err := repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		check(checker, line)
	}
	println("Good bye!")
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func makeChecker(grammarFile, framesFile string) (*pipeline.Checker, error) {
	var opts []pipeline.Option
	if grammarFile != "" {
		text, err := os.ReadFile(grammarFile)
		if err != nil {
			return nil, err
		}
		g, err := grammar.Parse(grammarFile, string(text))
		if err != nil {
			return nil, err
		}
		opts = append(opts, pipeline.WithGrammar(g))
	}
	if framesFile != "" {
		f, err := os.Open(framesFile)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		frames, err := agree.LoadFrames(f)
		if err != nil {
			return nil, err
		}
		opts = append(opts, pipeline.WithFrames(frames))
	}
	return pipeline.New(opts...)
}

// check runs one input line through the pipeline and prints the verdict.
func check(checker *pipeline.Checker, line string) bool {
	tokens, err := parseTokens(line)
	if err != nil {
		pterm.Error.Println(err.Error())
		return false
	}
	result, err := checker.Check(tokens)
	if err != nil {
		pterm.Error.Println(err.Error())
		return false
	}
	switch {
	case result.Grammatical:
		pterm.Success.Println("grammatical")
		pterm.Info.Println(result.Bracket)
	case !result.Recognized:
		pterm.Error.Println("no parse for tag sequence " + strings.Join(result.Tags, " "))
	default:
		pterm.Error.Println("ungrammatical")
		for _, v := range result.Violations {
			pterm.Error.Println("  " + v.String())
		}
	}
	return result.Grammatical
}

// parseTokens reads whitespace-separated surface/TAG[/features] items. The
// optional third segment lists explicit features, e.g. num=sg,per=3,lemma=go;
// absent features are guessed from a small built-in lexicon.
func parseTokens(line string) ([]gramcheck.Token, error) {
	var tokens []gramcheck.Token
	for _, item := range strings.Fields(line) {
		parts := strings.SplitN(item, "/", 3)
		if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
			return nil, fmt.Errorf("token %q is not of the form surface/TAG", item)
		}
		tok := gramcheck.Token{Surface: parts[0], Tag: parts[1]}
		tok.Morph = guessMorph(tok)
		if len(parts) == 3 {
			if err := applyFeatures(&tok.Morph, parts[2]); err != nil {
				return nil, err
			}
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}

func applyFeatures(m *gramcheck.Morph, features string) error {
	for _, kv := range strings.Split(features, ",") {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			return fmt.Errorf("feature %q is not of the form key=value", kv)
		}
		switch parts[0] {
		case "num":
			m.Number = parts[1]
		case "per":
			m.Person = parts[1]
		case "tense":
			m.Tense = parts[1]
		case "lemma":
			m.Lemma = parts[1]
		default:
			return fmt.Errorf("unknown feature %q", parts[0])
		}
	}
	return nil
}

// pronounMorph covers the personal pronouns; the checker core never guesses,
// so the CLI stands in for a morphological tagger as far as it can.
var pronounMorph = map[string]gramcheck.Morph{
	"i":    {Number: gramcheck.Singular, Person: gramcheck.First},
	"you":  {Person: gramcheck.Second},
	"he":   {Number: gramcheck.Singular, Person: gramcheck.Third},
	"she":  {Number: gramcheck.Singular, Person: gramcheck.Third},
	"it":   {Number: gramcheck.Singular, Person: gramcheck.Third},
	"we":   {Number: gramcheck.Plural, Person: gramcheck.First},
	"they": {Number: gramcheck.Plural, Person: gramcheck.Third},
}

// irregularPast maps a few frequent irregular past forms to their lemma.
var irregularPast = map[string]string{
	"went": "go", "came": "come", "bought": "buy", "saw": "see",
	"ate": "eat", "gave": "give", "took": "take", "made": "make",
	"found": "find", "wrote": "write", "read": "read", "put": "put",
	"sang": "sing", "drank": "drink", "ran": "run", "slept": "sleep",
}

func guessMorph(tok gramcheck.Token) gramcheck.Morph {
	lower := strings.ToLower(tok.Surface)
	switch tok.Tag {
	case "PRP":
		if m, ok := pronounMorph[lower]; ok {
			m.Lemma = lower
			return m
		}
	case "VBZ":
		return gramcheck.Morph{Tense: gramcheck.Present, Lemma: verbLemma(lower)}
	case "VBP":
		return gramcheck.Morph{Tense: gramcheck.Present, Lemma: lower}
	case "VBD":
		lemma := irregularPast[lower]
		if lemma == "" {
			lemma = strings.TrimSuffix(lower, "ed")
		}
		return gramcheck.Morph{Tense: gramcheck.Past, Lemma: lemma}
	}
	return gramcheck.Morph{Lemma: lower}
}

// verbLemma strips the 3rd person singular -s/-es suffix.
func verbLemma(surface string) string {
	switch {
	case strings.HasSuffix(surface, "ies"):
		return strings.TrimSuffix(surface, "ies") + "y"
	case strings.HasSuffix(surface, "es"):
		return strings.TrimSuffix(surface, "es")
	case strings.HasSuffix(surface, "s"):
		return strings.TrimSuffix(surface, "s")
	}
	return surface
}

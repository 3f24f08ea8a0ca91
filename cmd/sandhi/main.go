package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/samskrita/sandhi/pkg/db"
	"github.com/samskrita/sandhi/pkg/dictionary"
	"github.com/samskrita/sandhi/pkg/grammar"
	"github.com/samskrita/sandhi/pkg/ingest"
	"github.com/samskrita/sandhi/pkg/tokenizer"
	"github.com/samskrita/sandhi/pkg/webtext"

	_ "github.com/mattn/go-sqlite3"
)

func main() {
	dbFlag := flag.String("db", "sandhi.db", "Path to SQLite frequency database")
	dictFlag := flag.String("dict", "", "Path to a word list to load into the dictionary")
	jsonFlag := flag.String("json", "", "Path to a JSON corpus to load into the dictionary")
	jsonField := flag.String("json-field", "text", "JSON field holding verse text")
	urlFlag := flag.String("url", "", "URL of a page to fetch and ingest")
	fileFlag := flag.String("file", "", "Path to a text file to ingest")
	wordFlag := flag.String("word", "", "Analyze a single word (sandhi splits and morphology)")
	textFlag := flag.String("text", "", "Tokenize a passage and print the tokens")
	maxFlag := flag.Int("max", 5, "Maximum split candidates to show for -word")
	topFlag := flag.Int("top", 0, "Print the N most frequent stored words and exit")
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
	loaded := 0
	err = db.AllWords(conn, func(word string, frequency int) error {
		dict.AddN(word, frequency)
		loaded++
		return nil
	})
	if err != nil {
		log.Fatalf("Failed to load word frequencies: %v", err)
	}
	if loaded > 0 {
		fmt.Printf("Loaded %d words from %s\n", loaded, *dbFlag)
	}

	if *dictFlag != "" {
		if err := dict.LoadWordList(*dictFlag); err != nil {
			log.Fatalf("Failed to load word list: %v", err)
		}
		fmt.Printf("Dictionary now holds %d words\n", dict.Size())
	}
	if *jsonFlag != "" {
		if err := dict.LoadJSON(*jsonFlag, *jsonField, true); err != nil {
			log.Fatalf("Failed to load JSON corpus: %v", err)
		}
		fmt.Printf("Dictionary now holds %d words\n", dict.Size())
	}

	tok, err := tokenizer.New(dict, tokenizer.DefaultOptions())
	if err != nil {
		log.Fatalf("Failed to create tokenizer: %v", err)
	}

	switch {
	case *topFlag > 0:
		words, err := db.TopWords(conn, *topFlag)
		if err != nil {
			log.Fatalf("Failed to query top words: %v", err)
		}
		for i, w := range words {
			fmt.Printf("%d. %s (%d)\n", i+1, w.Word, w.Frequency)
		}
	case *wordFlag != "":
		analyzeWord(tok, *wordFlag, *maxFlag)
	case *textFlag != "":
		tokenizeText(tok, *textFlag)
	case *fileFlag != "":
		ingestFile(ctx, conn, dict, tok, *fileFlag)
	case *urlFlag != "":
		ingestURL(ctx, conn, dict, tok, *urlFlag)
	default:
		log.Fatal("Please provide one of -word, -text, -file, -url or -top")
	}
}

func analyzeWord(tok *tokenizer.Tokenizer, word string, max int) {
	candidates := tok.Engine().FindAllSplits(word, max)
	if len(candidates) == 0 {
		fmt.Printf("No analysis for %s\n", word)
	}
	for i, c := range candidates {
		if c.Right == "" {
			fmt.Printf("%d. %s (unsplit, score %.3f)\n", i+1, c.Left, c.Score)
			continue
		}
		fmt.Printf("%d. %s + %s (rule %s, score %.3f)\n", i+1, c.Left, c.Right, c.RuleID, c.Score)
	}

	for _, va := range grammar.NewVibhaktiAnalyzer().Analyze(word) {
		fmt.Printf("   vibhakti: %s + %s = %s %s (%.2f)\n",
			va.Stem, va.Ending, va.Case, va.Number, va.Confidence)
	}
	for _, pa := range grammar.NewPratyayaAnalyzer().Analyze(word) {
		fmt.Printf("   pratyaya: %s + %s = %s, %s (%.2f)\n",
			pa.Base, pa.Suffix, pa.Type, pa.Meaning, pa.Confidence)
	}
}

func tokenizeText(tok *tokenizer.Tokenizer, text string) {
	tokens := tok.Tokenize(text)
	var words []string
	for _, t := range tokens {
		if strings.TrimSpace(t) != "" {
			words = append(words, t)
		}
	}
	fmt.Printf("Tokens: %s\n", strings.Join(words, " | "))

	ok, m := tok.VerifyIntegrity(text, tokens)
	fmt.Printf("Lossless: %v (%d tokens, %.1f%% character accuracy)\n",
		ok, m.TokenCount, m.CharacterAccuracy*100)
}

func ingestFile(ctx context.Context, conn *sql.DB, dict *dictionary.Dictionary, tok *tokenizer.Tokenizer, path string) {
	content, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("Failed to read file: %v", err)
	}

	title := filepath.Base(path)
	sourceID, err := db.CreateOrGetSource(conn, "text_file", title, "", "")
	if err != nil {
		log.Fatalf("Failed to persist source: %v", err)
	}

	runIngest(ctx, conn, dict, tok, sourceID, string(content))
}

func ingestURL(ctx context.Context, conn *sql.DB, dict *dictionary.Dictionary, tok *tokenizer.Tokenizer, pageURL string) {
	fmt.Printf("Fetching %s...\n", pageURL)
	body, err := webtext.Fetch(ctx, pageURL)
	if err != nil {
		log.Fatalf("Failed to fetch URL: %v", err)
	}

	article, err := webtext.Extract(body, pageURL)
	if err != nil {
		log.Fatalf("Failed to extract article: %v", err)
	}
	fmt.Printf("Title: %s\n", article.Title)
	fmt.Printf("Extracted Text Length: %d chars\n", len(article.Text))

	sourceID, err := db.CreateOrGetSource(conn, "website_article", article.Title, pageURL, article.SiteName)
	if err != nil {
		log.Fatalf("Failed to persist source: %v", err)
	}
	fmt.Printf("Source saved with ID: %d\n", sourceID)

	runIngest(ctx, conn, dict, tok, sourceID, article.Text)
}

func runIngest(ctx context.Context, conn *sql.DB, dict *dictionary.Dictionary, tok *tokenizer.Tokenizer, sourceID int64, text string) {
	verses := ingest.SplitVerses(text)
	fmt.Printf("Split into %d verses.\n", len(verses))

	ig := ingest.NewIngester(conn, dict, tok)
	ig.Logger = log.New(os.Stderr, "", log.LstdFlags)
	ig.OnProgress = func(current, total int) {
		fmt.Printf("  %d/%d verses\n", current, total)
	}

	start := time.Now()
	total, err := ig.Ingest(ctx, sourceID, verses)
	if err != nil {
		log.Fatalf("Ingestion failed: %v", err)
	}
	fmt.Printf("Processing complete. Recorded %d word occurrences in %v.\n", total, time.Since(start))
}

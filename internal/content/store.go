package content

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"exambot/core/logger"
	"log/slog"
)

// Record is a single content entry: a theory question or a practice task.
// Prompt and Answer may carry img:<path> markers resolved via SplitMedia.
type Record struct {
	ID     int
	Prompt string
	Answer string
}

// Options configure a Store.
type Options struct {
	// Dir is the content root; record files and image assets live under it.
	Dir string
	// QuestionsFile and TasksFile are file names relative to Dir.
	QuestionsFile string
	TasksFile     string
}

// Store holds the question and task collections loaded from flat files.
// Load may be called again at runtime; readers are guarded accordingly.
type Store struct {
	dir           string
	questionsFile string
	tasksFile     string

	mu        sync.RWMutex
	questions []Record
	tasks     []Record
}

// NewStore creates an empty Store. Call Load before serving content.
func NewStore(opts Options) *Store {
	return &Store{
		dir:           opts.Dir,
		questionsFile: opts.QuestionsFile,
		tasksFile:     opts.TasksFile,
	}
}

// Load reads both collections from disk and replaces the current snapshot.
// A missing file yields an empty collection and a warning, not an error.
func (s *Store) Load(ctx context.Context) error {
	start := time.Now()
	questions, qSkipped, err := loadFile(filepath.Join(s.dir, s.questionsFile))
	if err != nil {
		return fmt.Errorf("content: load questions: %w", err)
	}
	tasks, tSkipped, err := loadFile(filepath.Join(s.dir, s.tasksFile))
	if err != nil {
		return fmt.Errorf("content: load tasks: %w", err)
	}

	s.mu.Lock()
	s.questions = questions
	s.tasks = tasks
	s.mu.Unlock()

	logger.Content.LogAttrs(ctx, slog.LevelInfo, "content.load",
		slog.String("event", "complete"),
		slog.Int("questions", len(questions)),
		slog.Int("tasks", len(tasks)),
		slog.Int("skipped", qSkipped+tSkipped),
		slog.Duration("duration", logger.Took(start)),
	)
	return nil
}

// loadFile parses one pipe-delimited collection file.
// Returns the records sorted by id and the number of skipped lines.
func loadFile(path string) ([]Record, int, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Content.Warn("content file missing",
				slog.String("event", "file_missing"),
				slog.String("path", path),
			)
			return nil, 0, nil
		}
		return nil, 0, err
	}
	defer f.Close()

	var (
		records []Record
		skipped int
	)
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			continue
		}
		parts := strings.SplitN(line, "|", 3)
		if len(parts) != 3 {
			skipped++
			continue
		}
		id, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			skipped++
			continue
		}
		records = append(records, Record{
			ID:     id,
			Prompt: strings.TrimSpace(parts[1]),
			Answer: strings.TrimSpace(parts[2]),
		})
	}
	if err := sc.Err(); err != nil {
		return nil, skipped, fmt.Errorf("scan %s: %w", path, err)
	}

	sort.Slice(records, func(i, j int) bool { return records[i].ID < records[j].ID })

	if skipped > 0 {
		logger.Content.Warn("skipped malformed lines",
			slog.String("event", "malformed_lines"),
			slog.String("path", path),
			slog.Int("skipped", skipped),
		)
	}
	return records, skipped, nil
}

// Questions returns a copy of the question collection in ascending id order.
func (s *Store) Questions() []Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Record, len(s.questions))
	copy(out, s.questions)
	return out
}

// Tasks returns a copy of the task collection in ascending id order.
func (s *Store) Tasks() []Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Record, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Question looks up a question by id.
func (s *Store) Question(id int) (Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return findByID(s.questions, id)
}

// Task looks up a task by id.
func (s *Store) Task(id int) (Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return findByID(s.tasks, id)
}

// NextQuestion returns the question following currentID, wrapping cyclically.
// Pass an id not present in the collection to get the first question.
func (s *Store) NextQuestion(currentID int) (Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return NextRecord(s.questions, currentID)
}

// NextTask returns the task following currentID, wrapping cyclically.
func (s *Store) NextTask(currentID int) (Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return NextRecord(s.tasks, currentID)
}

// AssetPath resolves a relative image path against the content root.
func (s *Store) AssetPath(rel string) string {
	return filepath.Join(s.dir, rel)
}

func findByID(records []Record, id int) (Record, bool) {
	i := sort.Search(len(records), func(i int) bool { return records[i].ID >= id })
	if i < len(records) && records[i].ID == id {
		return records[i], true
	}
	return Record{}, false
}

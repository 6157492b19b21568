// Package plannodes builds the default rehab plan node list and writes it as the
// seed document embedded by the migrations package.
package plannodes

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/getpup/pupsourcing/es"
	"github.com/google/uuid"
)

// NodeType distinguishes exercise lessons from progress benchmarks.
type NodeType string

const (
	Lesson    NodeType = "lesson"
	Benchmark NodeType = "benchmark"
)

const (
	// IconVideo is the only icon the default plan uses
	IconVideo = "video"

	lessonReps    = 12
	lessonRestSec = 3
)

// Node is one step of a plan. Fields are declared in key order so the encoded
// object has sorted keys.
type Node struct {
	Icon     string   `json:"icon"`
	ID       string   `json:"id"`
	IsLocked bool     `json:"isLocked"`
	NodeType NodeType `json:"nodeType"`
	Phase    int      `json:"phase"`
	Reps     int      `json:"reps"`
	RestSec  int      `json:"restSec"`
	Title    string   `json:"title"`
}

// Phase describes the lessons and benchmarks of one recovery phase.
type Phase struct {
	// Exercises are cycled through in order to fill LessonCount lessons
	Exercises []string

	// MidBenchmark is placed at index LessonCount/2
	MidBenchmark string

	// EndBenchmark closes the phase
	EndBenchmark string

	LessonCount int
}

// ACLPhases is the four-phase ACL recovery plan.
var ACLPhases = []Phase{
	{
		Exercises:    []string{"Seated Knee Extensions", "Quad Sets (Isometric)", "Heel Slides (Towel Slide)", "Ankle Pumps", "Calf Stretch (Seated Towel Stretch)"},
		MidBenchmark: "Straight Leg Raise Control (no knee lag)",
		EndBenchmark: "Full Extension (0° or matches other side)",
		LessonCount:  20,
	},
	{
		Exercises:    []string{"Terminal Knee Extensions", "Sit-to-Stand Squats", "Wall Sit (Shallow)", "Standing Calf Raises", "Seated Hamstring Stretch"},
		MidBenchmark: "Quad Confidence ≥ 7/10",
		EndBenchmark: "Wall Sit 10s (no shaking or pain)",
		LessonCount:  40,
	},
	{
		Exercises:    []string{"Step-Ups", "Single-Leg Sit-to-Stand", "Reverse Lunges", "Single-Leg Balance Hold", "Wall Sit (Deeper)"},
		MidBenchmark: "Step-Down Control (no knee collapse)",
		EndBenchmark: "Strength Symmetry ≥ 70%",
		LessonCount:  60,
	},
	{
		Exercises:    []string{"Split Squats", "Walking Lunges", "Lateral Step-Out Squats", "Single-Leg Wall Sit", "Tempo Squats (3s eccentric)"},
		MidBenchmark: "Fatigue Control (form maintained full set)",
		EndBenchmark: "Confidence Check (no hesitation/fear self-report)",
		LessonCount:  80,
	},
}

// NewID returns a random node ID in uppercase UUID form.
func NewID() string {
	return strings.ToUpper(uuid.NewString())
}

// DefaultACLPlan builds the nodes for ACLPhases. newID is called once per node;
// pass NewID for random IDs.
func DefaultACLPlan(newID func() string) []Node {
	return BuildPlan(ACLPhases, newID)
}

// BuildPlan lays out LessonCount lessons plus two benchmarks per phase. Phases are
// numbered from 1.
func BuildPlan(phases []Phase, newID func() string) []Node {
	var nodes []Node
	for i, p := range phases {
		phase := i + 1
		mid := p.LessonCount / 2
		lesson := 0
		for pos := 0; pos < p.LessonCount+2; pos++ {
			switch {
			case pos == mid:
				nodes = append(nodes, benchmark(newID(), p.MidBenchmark, phase))
			case pos == p.LessonCount+1:
				nodes = append(nodes, benchmark(newID(), p.EndBenchmark, phase))
			default:
				nodes = append(nodes, Node{
					Icon:     IconVideo,
					ID:       newID(),
					NodeType: Lesson,
					Phase:    phase,
					Reps:     lessonReps,
					RestSec:  lessonRestSec,
					Title:    p.Exercises[lesson%len(p.Exercises)],
				})
				lesson++
			}
		}
	}
	return nodes
}

func benchmark(id, title string, phase int) Node {
	return Node{
		Icon:     IconVideo,
		ID:       id,
		NodeType: Benchmark,
		Phase:    phase,
		Title:    title,
	}
}

// Encode writes nodes as a compact JSON array followed by a newline.
// HTML characters are not escaped.
func Encode(w io.Writer, nodes []Node) error {
	if nodes == nil {
		nodes = []Node{}
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(nodes)
}

// SeedConfig configures seed document generation.
type SeedConfig struct {
	// OutputPath is the seed document path; parent directories are created
	OutputPath string

	// Logger is for observability (optional).
	Logger es.Logger
}

// DefaultSeedConfig returns the seed path the migration generator reads by default.
func DefaultSeedConfig() SeedConfig {
	return SeedConfig{
		OutputPath: filepath.Join("supabase", "seed_plan_template_nodes.json"),
	}
}

// WriteSeed encodes nodes and writes them to config.OutputPath, replacing any existing file.
func WriteSeed(ctx context.Context, config *SeedConfig, nodes []Node) error {
	logger := config.Logger
	if logger == nil {
		logger = es.NoOpLogger{}
	}

	if config.OutputPath == "" {
		return fmt.Errorf("OutputPath cannot be empty")
	}

	if err := os.MkdirAll(filepath.Dir(config.OutputPath), 0o755); err != nil {
		return fmt.Errorf("failed to create output folder: %w", err)
	}

	var buf strings.Builder
	if err := Encode(&buf, nodes); err != nil {
		return fmt.Errorf("failed to encode plan nodes: %w", err)
	}

	if err := os.WriteFile(config.OutputPath, []byte(buf.String()), 0o644); err != nil {
		return fmt.Errorf("failed to write seed file: %w", err)
	}
	logger.Info(ctx, "seed written", "path", config.OutputPath, "nodes", len(nodes))

	return nil
}

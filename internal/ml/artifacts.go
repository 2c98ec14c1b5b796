package ml

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog/log"
)

const (
	modelFileName  = "performance_model.json"
	scalerFileName = "feature_scaler.json"
)

// ArtifactStore persists the fitted model and scaler as one unit. The two
// files are always written and read together; a model scored against a
// scaler from a different training run would be silently wrong.
type ArtifactStore struct {
	dir string
	mu  sync.Mutex
}

func NewArtifactStore(dir string) *ArtifactStore {
	return &ArtifactStore{dir: dir}
}

// Save writes the matched pair. Each file goes through a temp file plus
// rename so a crash mid-write never leaves a torn artifact, and the mutex
// keeps two training runs from interleaving their writes.
func (s *ArtifactStore) Save(model *RidgeModel, scaler *StandardScaler) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if model == nil || scaler == nil || !scaler.Fitted {
		return fmt.Errorf("artifact save: refusing to persist an incomplete model/scaler pair")
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("artifact save: creating model dir: %w", err)
	}

	if err := writeJSONAtomic(filepath.Join(s.dir, modelFileName), model); err != nil {
		return fmt.Errorf("artifact save: model: %w", err)
	}
	if err := writeJSONAtomic(filepath.Join(s.dir, scalerFileName), scaler); err != nil {
		return fmt.Errorf("artifact save: scaler: %w", err)
	}

	log.Info().Str("dir", s.dir).Str("version", model.Version).Msg("Model and scaler artifacts saved")
	return nil
}

// Load reads the persisted pair. ErrModelNotTrained is returned when either
// file is missing so callers can degrade to "no prediction available".
func (s *ArtifactStore) Load() (*RidgeModel, *StandardScaler, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var model RidgeModel
	if err := readJSON(filepath.Join(s.dir, modelFileName), &model); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil, ErrModelNotTrained
		}
		return nil, nil, fmt.Errorf("artifact load: model: %w", err)
	}

	var scaler StandardScaler
	if err := readJSON(filepath.Join(s.dir, scalerFileName), &scaler); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil, ErrModelNotTrained
		}
		return nil, nil, fmt.Errorf("artifact load: scaler: %w", err)
	}

	if len(model.Weights) != len(scaler.Means) {
		return nil, nil, fmt.Errorf("artifact load: model expects %d features but scaler was fit on %d", len(model.Weights), len(scaler.Means))
	}
	return &model, &scaler, nil
}

// Exists reports whether a persisted pair is present.
func (s *ArtifactStore) Exists() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, name := range []string{modelFileName, scalerFileName} {
		if _, err := os.Stat(filepath.Join(s.dir, name)); err != nil {
			return false
		}
	}
	return true
}

func writeJSONAtomic(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	return os.Rename(tmpName, path)
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

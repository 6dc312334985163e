package project

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"

	"github.com/piwi3910/binpack/internal/model"
)

// ErrUnsupportedFormat is returned for job files that are neither .json nor .toml.
var ErrUnsupportedFormat = errors.New("unsupported job file format")

// JobFormat returns "json" or "toml" for path based on its extension.
func JobFormat(path string) (string, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		return "json", nil
	case ".toml":
		return "toml", nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// SaveJob writes job to path as JSON or TOML depending on the extension.
// TOML files never carry the result.
func SaveJob(path string, job model.Job) error {
	format, err := JobFormat(path)
	if err != nil {
		return err
	}
	if format == "json" {
		return writeJSON(path, job)
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(job); err != nil {
		return fmt.Errorf("failed to encode job: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0644)
}

// LoadJob reads a job file. Settings the file leaves out keep their defaults
// and items without an ID get one.
func LoadJob(path string) (model.Job, error) {
	format, err := JobFormat(path)
	if err != nil {
		return model.Job{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Job{}, err
	}

	job := model.NewJob()
	job.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if format == "json" {
		err = json.Unmarshal(data, &job)
	} else {
		err = toml.Unmarshal(data, &job)
	}
	if err != nil {
		return model.Job{}, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}

	for i := range job.Items {
		if job.Items[i].ID == "" {
			job.Items[i].ID = uuid.New().String()[:8]
		}
		if job.Items[i].Quantity == 0 {
			job.Items[i].Quantity = 1
		}
	}
	if job.Items == nil {
		job.Items = []model.ItemSpec{}
	}
	return job, nil
}

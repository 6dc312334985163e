package model

// AppConfig holds user preferences and the defaults applied to new jobs.
type AppConfig struct {
	DefaultAlgorithm Algorithm `json:"default_algorithm"`
	DefaultHeuristic string    `json:"default_heuristic"`
	DefaultWidth     int       `json:"default_width"`
	DefaultHeight    int       `json:"default_height"`
	DefaultMaxBins   int       `json:"default_max_bins"`
	DefaultSort      SortOrder `json:"default_sort"`

	RecentJobs []string `json:"recent_jobs"`
}

// DefaultAppConfig returns an AppConfig matching DefaultSettings().
func DefaultAppConfig() AppConfig {
	defaults := DefaultSettings()
	return AppConfig{
		DefaultAlgorithm: defaults.Algorithm,
		DefaultHeuristic: defaults.Heuristic,
		DefaultWidth:     defaults.Width,
		DefaultHeight:    defaults.Height,
		DefaultMaxBins:   defaults.MaxBins,
		DefaultSort:      defaults.Sort,
		RecentJobs:       []string{},
	}
}

// ApplyToSettings copies non-zero defaults from the config into s.
func (c AppConfig) ApplyToSettings(s *JobSettings) {
	if c.DefaultAlgorithm != "" {
		s.Algorithm = c.DefaultAlgorithm
	}
	if c.DefaultHeuristic != "" {
		s.Heuristic = c.DefaultHeuristic
	}
	if c.DefaultWidth > 0 {
		s.Width = c.DefaultWidth
	}
	if c.DefaultHeight > 0 {
		s.Height = c.DefaultHeight
	}
	if c.DefaultMaxBins > 0 {
		s.MaxBins = c.DefaultMaxBins
	}
	if c.DefaultSort != "" {
		s.Sort = c.DefaultSort
	}
}

// AddRecentJob moves path to the front of the recent list, keeping at most limit entries.
func (c *AppConfig) AddRecentJob(path string, limit int) {
	recent := []string{path}
	for _, p := range c.RecentJobs {
		if p != path {
			recent = append(recent, p)
		}
	}
	if limit > 0 && len(recent) > limit {
		recent = recent[:limit]
	}
	c.RecentJobs = recent
}

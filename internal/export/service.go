package export

import (
	"github.com/google/uuid"

	"github.com/harrison/filecat/internal/category"
	"github.com/harrison/filecat/internal/logger"
)

// Service fans grouped data out to a set of renderers. Renderers are
// independent: a failed format withholds only its own artifact, and the
// remaining formats still produce theirs.
type Service struct {
	renderers []Renderer
	cache     *Cache
	log       *logger.ConsoleLogger
}

// NewService creates an export service over the given renderers.
func NewService(renderers []Renderer, log *logger.ConsoleLogger) *Service {
	return &Service{
		renderers: renderers,
		cache:     NewCache(),
		log:       log,
	}
}

// Export renders every configured format for the grouped data. The key is
// the assignment content hash; artifacts already cached under it are reused
// without re-rendering. Returns the artifacts that succeeded and one error
// per format that failed.
func (s *Service) Export(g category.Grouped, key string) ([]Artifact, []error) {
	runID := uuid.New().String()[:8]

	var artifacts []Artifact
	var errs []error

	for _, r := range s.renderers {
		if cached, ok := s.cache.Get(key, r.Format()); ok {
			s.log.Debugf("export %s: %s served from cache", runID, r.Format())
			artifacts = append(artifacts, cached)
			continue
		}

		data, err := r.Render(g)
		if err != nil {
			s.log.Errorf("export %s: %v", runID, err)
			errs = append(errs, err)
			continue
		}

		artifact := Artifact{
			Format: r.Format(),
			Name:   r.Format().SuggestedName(),
			Data:   data,
		}
		s.cache.Put(key, artifact)
		artifacts = append(artifacts, artifact)
		s.log.Debugf("export %s: rendered %s (%d bytes)", runID, artifact.Name, len(data))
	}

	return artifacts, errs
}

package slicer

import "sliceql/internal/domain"

// DisplaySchema compiles the presentation metadata for a slice request. It
// validates name existence only; reference keys pass through without the
// query compiler's selection checks. All collections are allocated so the
// schema encodes without nulls.
func (s *Service) DisplaySchema(req domain.SliceRequest) (*domain.DisplaySchema, error) {
	out := &domain.DisplaySchema{
		Metrics:    make(map[string]string, len(req.Metrics)),
		Dimensions: make([]domain.DimensionDisplay, 0, len(req.Dimensions)),
		References: make([]string, 0, len(req.References)),
	}

	for _, name := range req.Metrics {
		m, ok := s.reg.Metric(name)
		if !ok {
			return nil, domain.ErrUnknownName("metric %q is not registered", name)
		}
		out.Metrics[m.Name] = m.Label
	}

	for _, sel := range req.Dimensions {
		d, ok := s.reg.Dimension(sel.Name)
		if !ok {
			return nil, domain.ErrUnknownName("dimension %q is not registered", sel.Name)
		}
		disp := domain.DimensionDisplay{
			Label:    d.Label,
			IDFields: d.IDFieldNames(),
		}
		if d.Kind == domain.DimensionUnique {
			disp.LabelField = d.LabelFieldName()
		}
		if d.Kind == domain.DimensionCategorical && len(d.Options) > 0 {
			disp.LabelOptions = d.Options
		}
		out.Dimensions = append(out.Dimensions, disp)
	}

	for _, ref := range req.References {
		out.References = append(out.References, ref.Key())
	}

	return out, nil
}

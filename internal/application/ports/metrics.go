package ports

// Metrics eventos de negocio que los casos de uso reportan.
type Metrics interface {
	RecordTransition(status string)
	RecordUpload(mode string)
	RecordEmailFailure()
}

// NopMetrics implementación vacía para tests y wiring sin métricas.
type NopMetrics struct{}

func (NopMetrics) RecordTransition(string) {}
func (NopMetrics) RecordUpload(string)     {}
func (NopMetrics) RecordEmailFailure()     {}

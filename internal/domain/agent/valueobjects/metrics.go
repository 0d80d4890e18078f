package valueobjects

// Metrics are the cumulative usage counters of an agent.
type Metrics struct {
	DocumentsAnalyzed  int     `json:"documentos_analisados"`
	FilingsGenerated   int     `json:"pecas_geradas"`
	SuccessRate        float64 `json:"taxa_sucesso"`
	AverageTimeSeconds float64 `json:"tempo_medio_segundos"`
}

// Usage is the increment applied to an agent after one workflow step.
type Usage struct {
	Executions        int
	DocumentsAnalyzed int
	FilingsGenerated  int
}

// AnalysisUsage counts one strategic analysis call.
func AnalysisUsage() Usage {
	return Usage{Executions: 1, DocumentsAnalyzed: 1}
}

// GenerationUsage counts one filing generation call.
func GenerationUsage() Usage {
	return Usage{Executions: 1, FilingsGenerated: 1}
}

func (u Usage) IsZero() bool {
	return u.Executions == 0 && u.DocumentsAnalyzed == 0 && u.FilingsGenerated == 0
}

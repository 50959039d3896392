package classifier

import "productivity-planner/internal/model"

// PriorityRule maps any of its keywords to a priority.
// Reason is a format string receiving the matched keyword.
type PriorityRule struct {
	Name     string
	Keywords []string
	Priority model.Priority
	Reason   string
}

// DurationRule maps any of its keywords to a base estimate in minutes.
type DurationRule struct {
	Name     string
	Keywords []string
	Minutes  int
	Reason   string
}

const (
	DefaultPriority       = model.PriorityMedium
	DefaultPriorityReason = "default priority for a regular task"

	DefaultMinutes       = 45
	DefaultMinutesReason = "default estimate for a regular task"

	// DetailedDescriptionRunes is the description length past which estimates grow.
	DetailedDescriptionRunes = 100
	DetailedFactor           = 1.5
	DetailedSuffix           = " (adjusted for detailed description)"
)

// PriorityRules returns the priority table in evaluation order: high before low.
func PriorityRules() []PriorityRule {
	return []PriorityRule{
		{
			Name:     "high",
			Priority: model.PriorityHigh,
			Reason:   "contains high-priority keyword: %q",
			Keywords: []string{
				"urgent", "immediate", "critical", "deadline", "important", "priority", "asap",
				"client", "customer", "meeting", "presentation", "delivery",
				"urgente", "imediato", "crítico", "prazo", "importante", "prioridade",
				"cliente", "reunião", "apresentação", "entrega",
			},
		},
		{
			Name:     "low",
			Priority: model.PriorityLow,
			Reason:   "learning or research task: %q",
			Keywords: []string{
				"study", "research", "read", "learn", "optional", "when possible", "ideas", "future",
				"estudar", "pesquisar", "ler", "aprender", "opcional", "quando possível", "ideias", "futuro",
			},
		},
	}
}

// DurationRules returns the duration buckets in evaluation order.
func DurationRules() []DurationRule {
	return []DurationRule{
		{
			Name:    "quick",
			Minutes: 15,
			Reason:  "based on complexity: %q",
			Keywords: []string{
				"email", "reply", "call", "schedule", "confirm", "send", "check",
				"responder", "ligar", "agendar", "confirmar", "enviar", "verificar",
			},
		},
		{
			Name:    "short",
			Minutes: 30,
			Reason:  "based on complexity: %q",
			Keywords: []string{
				"review", "read", "update", "organize", "clean",
				"revisar", "ler", "atualizar", "organizar", "limpar",
			},
		},
		{
			Name:    "medium",
			Minutes: 60,
			Reason:  "based on complexity: %q",
			Keywords: []string{
				"prepare", "create", "write", "analyze", "plan", "configure",
				"preparar", "criar", "escrever", "analisar", "planejar", "configurar",
			},
		},
		{
			Name:    "long",
			Minutes: 120,
			Reason:  "based on complexity: %q",
			Keywords: []string{
				"develop", "implement", "study", "research", "document", "report",
				"desenvolver", "implementar", "estudar", "pesquisar", "documentar", "relatório",
			},
		},
	}
}

package entity

import (
	"time"

	"github.com/google/uuid"
)

// InterventionType classifies a psychology intervention.
type InterventionType string

const (
	InterventionAtendimentoIndividual InterventionType = "atendimento_individual"
	InterventionAtendimentoGrupo      InterventionType = "atendimento_grupo"
	InterventionAvaliacaoPsicologica  InterventionType = "avaliacao_psicologica"
	InterventionAcompanhamentoTreino  InterventionType = "acompanhamento_treino"
	InterventionAcompanhamentoJogo    InterventionType = "acompanhamento_jogo"
	InterventionReuniaoComissao       InterventionType = "reuniao_comissao"
	InterventionReuniaoResponsaveis   InterventionType = "reuniao_responsaveis"
	InterventionPalestra              InterventionType = "palestra"
	InterventionOutro                 InterventionType = "outro"
)

// String returns the string representation of the InterventionType.
func (t InterventionType) String() string {
	return string(t)
}

// IsValid checks if the InterventionType is a valid value.
func (t InterventionType) IsValid() bool {
	switch t {
	case InterventionAtendimentoIndividual, InterventionAtendimentoGrupo,
		InterventionAvaliacaoPsicologica, InterventionAcompanhamentoTreino,
		InterventionAcompanhamentoJogo, InterventionReuniaoComissao,
		InterventionReuniaoResponsaveis, InterventionPalestra, InterventionOutro:
		return true
	default:
		return false
	}
}

// Intervention is one psychology department record. It belongs to the
// professional that created it and may involve any number of athletes.
type Intervention struct {
	ID                uuid.UUID
	ProfessionalID    uuid.UUID // Profile of the professional that owns the record.
	Type              InterventionType
	Date              time.Time
	StartTime         string // "HH:MM", empty when not recorded.
	EndTime           string
	Category          *Category  // Optional target category for group work.
	PeriodID          *uuid.UUID // Optional quarterly period link.
	Description       string
	ConfidentialNotes string // Visible only to the owning professional and admins.
	AthleteIDs        []uuid.UUID
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

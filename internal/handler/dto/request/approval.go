package request

import (
	"lab-reservation/internal/domain/booking"
	"lab-reservation/internal/usecase/commands"
)

type DecisionRequest struct {
	Level   string `json:"level" binding:"required,oneof=teacher admin manager"`
	Action  string `json:"action" binding:"required,oneof=approve reject"`
	Comment string `json:"comment" binding:"max=1000"`
}

func (r *DecisionRequest) ToCommand() (commands.Decision, error) {
	level, err := booking.NewLevel(r.Level)
	if err != nil {
		return commands.Decision{}, err
	}
	action, err := booking.NewAction(r.Action)
	if err != nil {
		return commands.Decision{}, err
	}
	return commands.Decision{Level: level, Action: action, Comment: r.Comment}, nil
}

type BatchDecisionItem struct {
	Code string `json:"code" binding:"required"`
	DecisionRequest
}

type BatchDecisionRequest struct {
	Items []BatchDecisionItem `json:"items" binding:"required,min=1,max=100,dive"`
}

func (r *BatchDecisionRequest) ToCommand() ([]commands.BatchItem, error) {
	items := make([]commands.BatchItem, 0, len(r.Items))
	for _, it := range r.Items {
		d, err := it.ToCommand()
		if err != nil {
			return nil, err
		}
		items = append(items, commands.BatchItem{Code: it.Code, Decision: d})
	}
	return items, nil
}

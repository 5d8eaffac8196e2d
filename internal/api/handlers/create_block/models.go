package create_block

import (
	"time"

	"github.com/edmarkin/DCM-ScheduleService/internal/domain"
	createBlock "github.com/edmarkin/DCM-ScheduleService/internal/usecase/create_block"
	"github.com/edmarkin/DCM-ScheduleService/pkg/types"
)

// CreateBlockRequest HTTP request model.
// Отсутствие timeFrom и timeTo означает блокировку всего дня.
type CreateBlockRequest struct {
	BlockDate string  `json:"blockDate"` // "2025-06-04"
	TimeFrom  *string `json:"timeFrom,omitempty"`
	TimeTo    *string `json:"timeTo,omitempty"`
	Reason    *string `json:"reason,omitempty"`
}

// BlockResponse HTTP response model
type BlockResponse struct {
	ID         int64   `json:"id"`
	ProviderID int64   `json:"providerId"`
	BlockDate  string  `json:"blockDate"`
	TimeFrom   string  `json:"timeFrom"`
	TimeTo     string  `json:"timeTo"`
	WholeDay   bool    `json:"wholeDay"`
	Reason     *string `json:"reason,omitempty"`
	CreatedAt  string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case.
// Времена парсятся снисходительно: легаси-клиент регистратуры присылает
// значения вида "9:0" и "09:00:00", строгий парсинг здесь сломал бы его.
func (r *CreateBlockRequest) ToUseCaseRequest(providerID int64) (*createBlock.Request, error) {
	blockDate, err := time.Parse(domain.DateFormat, r.BlockDate)
	if err != nil {
		return nil, err
	}

	req := &createBlock.Request{
		ProviderID: providerID,
		Date:       blockDate,
		Reason:     r.Reason,
	}

	if r.TimeFrom != nil {
		from := types.ParseTimeLenient(*r.TimeFrom)
		req.TimeFrom = &from
	}

	if r.TimeTo != nil {
		to := types.ParseTimeLenient(*r.TimeTo)
		req.TimeTo = &to
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBlock.Response) *BlockResponse {
	return &BlockResponse{
		ID:         resp.ID,
		ProviderID: resp.ProviderID,
		BlockDate:  resp.BlockDate.Format(domain.DateFormat),
		TimeFrom:   resp.TimeFrom.String(),
		TimeTo:     resp.TimeTo.String(),
		WholeDay:   resp.WholeDay,
		Reason:     resp.Reason,
		CreatedAt:  resp.CreatedAt.Format(time.RFC3339),
	}
}

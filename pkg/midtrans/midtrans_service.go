package midtrans

import (
	"context"

	"Fitlog-Backend/domain"
	"Fitlog-Backend/internal/utils"

	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

type (
	MidtransService interface {
		CreateTransaction(ctx context.Context, req domain.MidtransPaymentRequest) (domain.MidtransPaymentResponse, error)
	}

	midtransService struct {
		client snap.Client
	}
)

func NewMidtransService() MidtransService {
	serverKey := utils.GetConfig("SERVER_KEY")

	env := midtrans.Sandbox
	if utils.GetConfig("IsProd") == "true" {
		env = midtrans.Production
	}

	var client snap.Client
	client.New(serverKey, env)

	return &midtransService{client: client}
}

func (s *midtransService) CreateTransaction(ctx context.Context, req domain.MidtransPaymentRequest) (domain.MidtransPaymentResponse, error) {
	snapReq := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  req.OrderID,
			GrossAmt: req.Amount,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			Email: req.Email,
		},
	}

	resp, err := s.client.CreateTransaction(snapReq)
	if err != nil {
		return domain.MidtransPaymentResponse{}, err
	}

	return domain.MidtransPaymentResponse{
		Token:       resp.Token,
		RedirectURL: resp.RedirectURL,
	}, nil
}

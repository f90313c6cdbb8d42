package generator

import (
	"github.com/amoylab/toolshop-datagen/internal/common/errorx"
	"github.com/amoylab/toolshop-datagen/internal/model"
	"github.com/amoylab/toolshop-datagen/internal/random"
)

// referenceSuffixLength keeps the longest reference (BNPL) at 20 characters
const referenceSuffixLength = 16

var (
	methodTable = random.MustWeighted(
		random.Weighted[model.PaymentMethod]{Value: model.MethodCreditCard, Weight: 60},
		random.Weighted[model.PaymentMethod]{Value: model.MethodBankTransfer, Weight: 25},
		random.Weighted[model.PaymentMethod]{Value: model.MethodCashOnDelivery, Weight: 10},
		random.Weighted[model.PaymentMethod]{Value: model.MethodBuyNowPayLater, Weight: 5},
	)
	statusTable = random.MustWeighted(
		random.Weighted[model.PaymentStatus]{Value: model.StatusSuccess, Weight: 85},
		random.Weighted[model.PaymentStatus]{Value: model.StatusPending, Weight: 10},
		random.Weighted[model.PaymentStatus]{Value: model.StatusFailed, Weight: 5},
	)
	referencePrefixes = map[model.PaymentMethod]string{
		model.MethodCreditCard:     "CC",
		model.MethodBankTransfer:   "BT",
		model.MethodCashOnDelivery: "COD",
		model.MethodBuyNowPayLater: "BNPL",
	}
)

// ReferencePrefix returns the payment reference prefix of method
func ReferencePrefix(method model.PaymentMethod) string {
	if p, ok := referencePrefixes[method]; ok {
		return p
	}
	return "PAY"
}

// Payments generates count payments against random invoices. An invoice may
// receive several payments or none.
func Payments(env *Env, count int, invoices []model.Invoice) ([]model.Payment, error) {
	if len(invoices) == 0 {
		return nil, errorx.NewConstraintError(model.TablePayments, "invoice_id", "no invoices to pay")
	}
	payments := make([]model.Payment, 0, count)
	for i := 0; i < count; i++ {
		inv := random.Pick(env.Rand, invoices)
		method := methodTable.Pick(env.Rand)
		p := model.Payment{
			ID:                 env.IDs.NewID(),
			InvoiceID:          inv.ID,
			Method:             method,
			Status:             statusTable.Pick(env.Rand),
			PaymentReferenceID: ptr(ReferencePrefix(method) + env.Rand.Alphanumeric(referenceSuffixLength)),
		}
		p.CreatedAt = env.Rand.TimeBetween(inv.InvoiceDate, env.Anchor)
		p.UpdatedAt = env.Rand.TimeBetween(p.CreatedAt, env.Anchor)
		payments = append(payments, p)
	}
	return payments, nil
}

package insight

import "github.com/Vivesh2911/NeoWallet/internal/domain/models"

// PreviewTransfer projects the balance after a proposed transfer. The
// projection is optimistic and non-authoritative: it may go negative and is
// shown as-is, sufficiency is checked by the ledger at submission time.
func PreviewTransfer(currentBalance, amount float64) models.TransferPreview {
	return models.TransferPreview{
		CurrentBalance: currentBalance,
		Amount:         amount,
		Projected:      currentBalance - amount,
	}
}

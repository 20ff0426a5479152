package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	walletdomain "github.com/satstreet/pricing-service/internal/app/wallet/domain"
	"github.com/satstreet/pricing-service/internal/app/wallet/queries/faucet"
	"github.com/satstreet/pricing-service/internal/app/wallet/queries/get_wallet_info"
	"github.com/satstreet/pricing-service/internal/app/wallet/usecases/create_transaction"
	"github.com/satstreet/pricing-service/internal/app/wallet/usecases/generate_address"
)

// WalletInfo serves the wallet summary.
type WalletInfo interface {
	Execute(ctx context.Context, profileID string) (*get_wallet_info.Response, error)
}

// AddressGenerator assigns fresh addresses.
type AddressGenerator interface {
	Execute(ctx context.Context, profileID string) (*generate_address.Result, error)
}

// TransactionCreator debits the wallet and appends the ledger.
type TransactionCreator interface {
	Execute(ctx context.Context, req *create_transaction.Request) (*create_transaction.Result, error)
}

// TransactionVerifier resolves confirmation status.
type TransactionVerifier interface {
	Execute(ctx context.Context, txHash string) (*walletdomain.VerificationResult, error)
}

// Faucet simulates testnet payouts.
type Faucet interface {
	Execute(address string) (*faucet.Response, error)
}

// BalanceLookup simulates balance checks for arbitrary addresses.
type BalanceLookup interface {
	Execute(address string) (*walletdomain.AddressBalance, error)
}

// WalletHandler serves the bitcoin-service function endpoint.
type WalletHandler struct {
	info    WalletInfo
	address AddressGenerator
	create  TransactionCreator
	verify  TransactionVerifier
	faucet  Faucet
	balance BalanceLookup
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(
	info WalletInfo,
	address AddressGenerator,
	create TransactionCreator,
	verify TransactionVerifier,
	faucetQuery Faucet,
	balance BalanceLookup,
) *WalletHandler {
	return &WalletHandler{
		info:    info,
		address: address,
		create:  create,
		verify:  verify,
		faucet:  faucetQuery,
		balance: balance,
	}
}

func (h *WalletHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req actionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	switch req.Action {
	case "getWalletInfo":
		h.handleWalletInfo(w, r, req.Payload)
	case "generateAddress":
		h.handleGenerateAddress(w, r, req.Payload)
	case "createTransaction":
		h.handleCreateTransaction(w, r, req.Payload)
	case "verifyTransaction":
		h.handleVerifyTransaction(w, r, req.Payload)
	case "getTestnetFaucet":
		h.handleFaucet(w, req.Payload)
	case "getBalanceFromAddress":
		h.handleBalance(w, req.Payload)
	default:
		writeError(w, http.StatusBadRequest, "Invalid action")
	}
}

func (h *WalletHandler) handleWalletInfo(w http.ResponseWriter, r *http.Request, payload json.RawMessage) {
	var body struct {
		UserID string `json:"userId"`
	}
	if err := json.Unmarshal(payload, &body); err != nil || body.UserID == "" {
		writeError(w, http.StatusBadRequest, "userId is required")
		return
	}

	resp, err := h.info.Execute(r.Context(), body.UserID)
	if err != nil {
		h.writeWalletError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *WalletHandler) handleGenerateAddress(w http.ResponseWriter, r *http.Request, payload json.RawMessage) {
	var body struct {
		UserID string `json:"userId"`
	}
	if err := json.Unmarshal(payload, &body); err != nil || body.UserID == "" {
		writeError(w, http.StatusBadRequest, "userId is required")
		return
	}

	result, err := h.address.Execute(r.Context(), body.UserID)
	if err != nil {
		h.writeWalletError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"address": result.Address})
}

func (h *WalletHandler) handleCreateTransaction(w http.ResponseWriter, r *http.Request, payload json.RawMessage) {
	var body struct {
		UserID           string `json:"userId"`
		ProductID        string `json:"productId"`
		Amount           int64  `json:"amount"`
		RecipientAddress string `json:"recipientAddress"`
	}
	if err := json.Unmarshal(payload, &body); err != nil || body.UserID == "" {
		writeError(w, http.StatusBadRequest, "userId is required")
		return
	}

	result, err := h.create.Execute(r.Context(), &create_transaction.Request{
		ProfileID:        body.UserID,
		ProductID:        body.ProductID,
		AmountSats:       body.Amount,
		RecipientAddress: body.RecipientAddress,
	})
	if err != nil {
		if errors.Is(err, walletdomain.ErrInsufficientFunds) {
			writeErrorCode(w, http.StatusBadRequest, "Insufficient balance", "INSUFFICIENT_FUNDS")
			return
		}
		if errors.Is(err, walletdomain.ErrInvalidAmount) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.writeWalletError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":      true,
		"txHash":       result.TxHash,
		"amount":       result.AmountSats,
		"balanceAfter": result.BalanceAfter,
	})
}

func (h *WalletHandler) handleVerifyTransaction(w http.ResponseWriter, r *http.Request, payload json.RawMessage) {
	var body struct {
		TxHash string `json:"txHash"`
	}
	if err := json.Unmarshal(payload, &body); err != nil || body.TxHash == "" {
		writeError(w, http.StatusBadRequest, "txHash is required")
		return
	}

	result, err := h.verify.Execute(r.Context(), body.TxHash)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (h *WalletHandler) handleFaucet(w http.ResponseWriter, payload json.RawMessage) {
	var body struct {
		Address string `json:"address"`
	}
	if err := json.Unmarshal(payload, &body); err != nil || body.Address == "" {
		writeError(w, http.StatusBadRequest, "address is required")
		return
	}

	resp, err := h.faucet.Execute(body.Address)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *WalletHandler) handleBalance(w http.ResponseWriter, payload json.RawMessage) {
	var body struct {
		Address string `json:"address"`
	}
	if err := json.Unmarshal(payload, &body); err != nil || body.Address == "" {
		writeError(w, http.StatusBadRequest, "address is required")
		return
	}

	resp, err := h.balance.Execute(body.Address)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *WalletHandler) writeWalletError(w http.ResponseWriter, err error) {
	if errors.Is(err, walletdomain.ErrProfileNotFound) {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	writeError(w, http.StatusInternalServerError, err.Error())
}

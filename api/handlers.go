package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/MixinNetwork/mmp/nft"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

var errBadRequest = errors.New("bad request")

type seriesView struct {
	Id      uint64 `json:"id"`
	Pointer string `json:"pointer"`
	Minted  uint64 `json:"minted"`
	Cap     uint64 `json:"cap"`
}

type itemView struct {
	Id        uint64 `json:"id"`
	Series    uint64 `json:"series"`
	Sequence  uint64 `json:"sequence"`
	Owner     string `json:"owner"`
	Price     string `json:"price"`
	Paid      string `json:"paid"`
	CreatedAt string `json:"created_at"`
}

func (s *Server) getPrice(w http.ResponseWriter, r *http.Request) {
	render(w, http.StatusOK, map[string]interface{}{
		"price":        s.ledger.Price().String(),
		"total_minted": s.ledger.TotalMinted(),
	})
}

func (s *Server) getSeries(w http.ResponseWriter, r *http.Request) {
	id, err := pathId(r)
	if err != nil {
		renderError(w, err)
		return
	}
	view := seriesView{Id: id, Cap: nft.SeriesCap}
	if sr := s.ledger.Series(id); sr != nil {
		view.Pointer = sr.Pointer
		view.Minted = sr.Minted
	}
	render(w, http.StatusOK, view)
}

func (s *Server) putMetadata(w http.ResponseWriter, r *http.Request) {
	id, err := pathId(r)
	if err != nil {
		renderError(w, err)
		return
	}
	var body struct {
		Pointer string `json:"pointer"`
	}
	err = decode(r, &body)
	if err != nil {
		renderError(w, err)
		return
	}
	err = s.ledger.SetMetadata(r.Header.Get(CallerHeader), id, body.Pointer)
	if err != nil {
		renderError(w, err)
		return
	}
	render(w, http.StatusOK, seriesView{Id: id, Pointer: body.Pointer, Minted: s.ledger.Series(id).Minted, Cap: nft.SeriesCap})
}

func (s *Server) postMint(w http.ResponseWriter, r *http.Request) {
	id, err := pathId(r)
	if err != nil {
		renderError(w, err)
		return
	}
	var body struct {
		Amount string `json:"amount"`
	}
	err = decode(r, &body)
	if err != nil {
		renderError(w, err)
		return
	}
	amount := decimal.Zero
	if body.Amount != "" {
		amount, err = decimal.NewFromString(body.Amount)
		if err != nil {
			renderError(w, fmt.Errorf("%w: amount %s", errBadRequest, body.Amount))
			return
		}
	}
	itemId, err := s.ledger.Mint(r.Header.Get(CallerHeader), id, amount)
	if err != nil {
		renderError(w, err)
		return
	}
	render(w, http.StatusCreated, map[string]uint64{"item_id": itemId})
}

func (s *Server) getItem(w http.ResponseWriter, r *http.Request) {
	id, err := pathId(r)
	if err != nil {
		renderError(w, err)
		return
	}
	item, err := s.ledger.Item(id)
	if err != nil {
		renderError(w, err)
		return
	}
	if item == nil {
		renderError(w, fmt.Errorf("%w %d", nft.ErrItemNotFound, id))
		return
	}
	render(w, http.StatusOK, itemView{
		Id:        item.Id,
		Series:    item.Series,
		Sequence:  item.Sequence,
		Owner:     item.Owner,
		Price:     item.Price,
		Paid:      item.Paid,
		CreatedAt: item.CreatedAt.UTC().Format(time.RFC3339Nano),
	})
}

func (s *Server) getURI(w http.ResponseWriter, r *http.Request) {
	id, err := pathId(r)
	if err != nil {
		renderError(w, err)
		return
	}
	render(w, http.StatusOK, map[string]string{"uri": s.ledger.TokenURI(id)})
}

func (s *Server) getOwner(w http.ResponseWriter, r *http.Request) {
	id, err := pathId(r)
	if err != nil {
		renderError(w, err)
		return
	}
	owner, err := s.ledger.OwnerOf(id)
	if err != nil {
		renderError(w, err)
		return
	}
	render(w, http.StatusOK, map[string]string{"owner": owner})
}

func (s *Server) postTransfer(w http.ResponseWriter, r *http.Request) {
	id, err := pathId(r)
	if err != nil {
		renderError(w, err)
		return
	}
	var body struct {
		To string `json:"to"`
	}
	err = decode(r, &body)
	if err != nil {
		renderError(w, err)
		return
	}
	err = s.ledger.Transfer(r.Header.Get(CallerHeader), body.To, id)
	if err != nil {
		renderError(w, err)
		return
	}
	render(w, http.StatusOK, map[string]string{"owner": body.To})
}

func (s *Server) getBalance(w http.ResponseWriter, r *http.Request) {
	owner := chi.URLParam(r, "id")
	balance, err := s.ledger.BalanceOf(owner)
	if err != nil {
		renderError(w, err)
		return
	}
	render(w, http.StatusOK, map[string]uint64{"balance": balance})
}

func pathId(r *http.Request) (uint64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: id %q", errBadRequest, raw)
	}
	return id, nil
}

func decode(r *http.Request, v interface{}) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: %v", errBadRequest, err)
	}
	return nil
}

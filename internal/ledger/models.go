package ledger

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrInvalidDateRange flags an unparseable data_inicio/data_fim parameter;
// it surfaces as a validation failure, never a storage one.
var ErrInvalidDateRange = errors.New("invalid date range")

// Row is one flat detailed-ledger line, already formatted for display.
type Row struct {
	PurchasedAt string `json:"data_compra"`
	PDV         string `json:"pdv"`
	Terminal    string `json:"pos"`
	OrderID     string `json:"pedido"`
	Barcode     string `json:"codigo_barras"`
	Status      string `json:"status"`
	Class       string `json:"classe"`
	Value       string `json:"valor"`
	Payment     string `json:"pagamento"`
	GatewayTxn  string `json:"transacao"`
}

// QueryParams carries the raw ledger query. A non-empty Search switches the
// query to free-text mode and every discrete filter is ignored.
type QueryParams struct {
	Search    string `form:"busca"`
	PDV       string `form:"pdv"`
	Terminal  string `form:"pos"`
	Status    string `form:"status"`
	Class     string `form:"classe"`
	DateStart string `form:"data_inicio"`
	DateEnd   string `form:"data_fim"`
	Rows      string `form:"linhas"`
	Page      string `form:"pagina"`
}

// pagination reports the parsed page geometry; pagination only applies when
// both values parse as integers.
func (p QueryParams) pagination() (rows, page int, ok bool) {
	rows, errRows := strconv.Atoi(p.Rows)
	page, errPage := strconv.Atoi(p.Page)
	if errRows != nil || errPage != nil || rows <= 0 || page <= 0 {
		return 0, 0, false
	}
	return rows, page, true
}

// cacheKey canonicalizes the query for the ledger cache.
func (p QueryParams) cacheKey() string {
	return fmt.Sprintf("q=%s;pdv=%s;pos=%s;st=%s;cl=%s;di=%s;df=%s;r=%s;p=%s",
		p.Search, p.PDV, p.Terminal, p.Status, p.Class, p.DateStart, p.DateEnd, p.Rows, p.Page)
}

// Ledger is the detailed or cancelled ledger payload. Pagina and TotalPaginas
// are present only when the query was paginated.
type Ledger struct {
	EventID      string `json:"event_id"`
	Rows         []Row  `json:"linhas"`
	Pagina       *int   `json:"pagina,omitempty"`
	TotalPaginas *int   `json:"total_paginas,omitempty"`
}

// FilterOptions lists the distinct values the frontend offers as discrete
// ledger filters.
type FilterOptions struct {
	EventID   string   `json:"event_id"`
	PDVs      []string `json:"pdvs"`
	Terminals []string `json:"pos"`
	Statuses  []string `json:"status"`
	Classes   []string `json:"classes"`
}

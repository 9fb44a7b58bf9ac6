package server

import (
	"encoding/json"
	"io"
	"net/http"
	"sort"
	"strings"

	"github.com/avolkov/washconv/internal/catalog"
	"github.com/avolkov/washconv/internal/convert"
	"github.com/avolkov/washconv/internal/errs"
	"github.com/avolkov/washconv/internal/model"
	"github.com/avolkov/washconv/internal/tabular"
)

const previewRows = 10

type catalogResponse struct {
	Rows               int      `json:"rows"`
	ServiceTypes       int      `json:"service_types"`
	Items              []string `json:"items"`
	FemaleOnlyDefaults []string `json:"female_only_defaults"`
	MaleOnlyDefaults   []string `json:"male_only_defaults"`
	Warnings           []string `json:"warnings,omitempty"`
}

type ordersResponse struct {
	Total       int      `json:"total"`
	Convertible int      `json:"convertible"`
	Warnings    []string `json:"warnings,omitempty"`
}

type convertRequest struct {
	FemaleOnly   []string `json:"female_only"`
	MaleOnly     []string `json:"male_only"`
	SplitCeiling int64    `json:"split_ceiling"` // currency units
	SplitFloor   int64    `json:"split_floor"`
}

type convertResponse struct {
	SubOrders int              `json:"sub_orders"`
	Rows      int              `json:"rows"`
	Logs      []model.LogEntry `json:"logs"`
	Columns   []string         `json:"columns"`
	Preview   [][]string       `json:"preview"`
}

func (srv *Server) UploadCatalogHandler(w http.ResponseWriter, r *http.Request) {
	table, err := readTableUpload(r)
	if err != nil {
		http.Error(w, "unreadable price table", http.StatusBadRequest)
		return
	}

	rows, warnings, err := tabular.ParsePriceRows(table)
	if err != nil {
		http.Error(w, "empty price table", http.StatusBadRequest)
		return
	}

	srv.store.SaveCatalog(rows)

	names := srv.store.ItemNames()
	defaults, err := srv.store.DefaultSets()
	if err != nil {
		http.Error(w, "store error", http.StatusInternalServerError)
		return
	}

	cat, _ := srv.store.Catalog()
	srv.writeJSON(w, catalogResponse{
		Rows:               len(rows),
		ServiceTypes:       len(cat),
		Items:              names,
		FemaleOnlyDefaults: sortedSet(defaults.FemaleOnly),
		MaleOnlyDefaults:   sortedSet(defaults.MaleOnly),
		Warnings:           warnings,
	})
}

func (srv *Server) UploadOrdersHandler(w http.ResponseWriter, r *http.Request) {
	table, err := readTableUpload(r)
	if err != nil {
		http.Error(w, "unreadable orders table", http.StatusBadRequest)
		return
	}

	orders, warnings, err := tabular.ParseOrders(table)
	if err != nil {
		http.Error(w, "empty orders table", http.StatusBadRequest)
		return
	}

	srv.store.SaveOrders(orders)

	convertible := 0
	for _, o := range orders {
		if convert.Convertible(o) {
			convertible++
		}
	}

	srv.writeJSON(w, ordersResponse{
		Total:       len(orders),
		Convertible: convertible,
		Warnings:    warnings,
	})
}

func (srv *Server) ConvertHandler(w http.ResponseWriter, r *http.Request) {
	var req convertRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
	}

	cat, err := srv.store.Catalog()
	if err != nil {
		http.Error(w, "catalog not loaded", http.StatusConflict)
		return
	}
	orders, err := srv.store.Orders()
	if err != nil {
		http.Error(w, "orders not loaded", http.StatusConflict)
		return
	}

	sets, err := srv.requestSets(req)
	if err != nil {
		http.Error(w, "store error", http.StatusInternalServerError)
		return
	}

	opts := convert.Options{
		Ceiling: srv.config.SplitCeiling * 100,
		Floor:   srv.config.SplitFloor * 100,
		Makeup:  srv.config.MakeupItem,
	}
	if req.SplitCeiling > 0 {
		opts.Ceiling = req.SplitCeiling * 100
	}
	if req.SplitFloor > 0 {
		opts.Floor = req.SplitFloor * 100
	}

	tr := convert.New(cat, sets, opts, srv.deps.Rand, srv.deps.Now)
	res := tr.ConvertAll(orders)
	srv.store.SaveResult(res)

	rows := tabular.Rows(res.SubOrders)
	preview := make([][]string, 0, previewRows)
	for i, row := range rows {
		if i == previewRows {
			break
		}
		preview = append(preview, tabular.Record(row))
	}

	srv.writeJSON(w, convertResponse{
		SubOrders: len(res.SubOrders),
		Rows:      len(rows),
		Logs:      res.Logs,
		Columns:   tabular.Columns,
		Preview:   preview,
	})
}

func (srv *Server) LogsHandler(w http.ResponseWriter, r *http.Request) {
	res, err := srv.store.Result()
	if err != nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	srv.writeJSON(w, res.Logs)
}

func (srv *Server) DownloadCSVHandler(w http.ResponseWriter, r *http.Request) {
	res, err := srv.store.Result()
	if err != nil {
		http.Error(w, "no conversion result", http.StatusConflict)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="laundry_orders.csv"`)
	if err := tabular.WriteCSV(w, tabular.Rows(res.SubOrders)); err != nil {
		srv.deps.Logger.Errorf("csv export: %v", err)
	}
}

func (srv *Server) DownloadXLSXHandler(w http.ResponseWriter, r *http.Request) {
	res, err := srv.store.Result()
	if err != nil {
		http.Error(w, "no conversion result", http.StatusConflict)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="laundry_orders.xlsx"`)
	if err := tabular.WriteXLSX(w, tabular.Rows(res.SubOrders)); err != nil {
		srv.deps.Logger.Errorf("xlsx export: %v", err)
	}
}

// requestSets uses the explicit override lists when the request carries any,
// otherwise the defaults derived from the loaded catalog.
func (srv *Server) requestSets(req convertRequest) (model.EligibilitySets, error) {
	if req.FemaleOnly == nil && req.MaleOnly == nil {
		return srv.store.DefaultSets()
	}
	return catalog.SetsFromNames(req.FemaleOnly, req.MaleOnly), nil
}

// readTableUpload accepts either a multipart "file" field or a raw body
// with the filename passed as a query parameter. The extension picks the
// parser.
func readTableUpload(r *http.Request) (tabular.Table, error) {
	var src io.Reader
	var name string

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		file, header, err := r.FormFile("file")
		if err != nil {
			return nil, err
		}
		defer file.Close()
		src, name = file, header.Filename
	} else {
		src = r.Body
		name = r.URL.Query().Get("filename")
		if name == "" {
			name = "upload.csv"
		}
	}

	table, err := tabular.ReadTable(src, name)
	if err != nil {
		return nil, err
	}
	if len(table) == 0 {
		return nil, errs.ErrEmptyTable
	}
	return table, nil
}

func (srv *Server) writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		srv.deps.Logger.Errorf("encode response: %v", err)
	}
}

func sortedSet(set map[string]struct{}) []string {
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

package stub

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/shashiranjanraj/shopctl/pkg/auth"
	"github.com/shashiranjanraj/shopctl/pkg/bind"
	"github.com/shashiranjanraj/shopctl/pkg/response"
)

// resource wires one record type into the shared CRUD handler set.
// finalize, when set, runs after every create and patch to derive fields the
// client does not send (product category/supplier snapshots).
type resource[R any, D any] struct {
	tbl      *table[R]
	finalize func(R) (R, error)
}

func (res *resource[R, D]) mount(r chi.Router, path string) {
	r.Route(path, func(r chi.Router) {
		r.Get("/", res.list)
		r.Post("/", res.create)
		r.Get("/{id}", res.get)
		r.Patch("/{id}", res.patch)
		r.Delete("/{id}", res.remove)
	})
}

func (res *resource[R, D]) list(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, res.tbl.List())
}

func (res *resource[R, D]) get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	rec, found := res.tbl.Get(id)
	if !found {
		response.NotFound(w)
		return
	}
	response.JSON(w, http.StatusOK, rec)
}

func (res *resource[R, D]) create(w http.ResponseWriter, r *http.Request) {
	var draft D
	errs, err := bind.JSON(r.Body, &draft)
	if err != nil {
		response.Messages(w, http.StatusBadRequest, "Malformed JSON body")
		return
	}
	if len(errs) > 0 {
		response.Messages(w, http.StatusBadRequest, flatten(errs)...)
		return
	}

	rec, err := draftToRecord[R](draft)
	if err != nil {
		response.Messages(w, http.StatusBadRequest, "Malformed JSON body")
		return
	}
	if res.finalize != nil {
		if rec, err = res.finalize(rec); err != nil {
			response.Messages(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	response.JSON(w, http.StatusCreated, res.tbl.Insert(rec))
}

func (res *resource[R, D]) patch(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	body, err := readAll(r)
	if err != nil {
		response.Messages(w, http.StatusBadRequest, "Malformed JSON body")
		return
	}

	rec, found, err := res.tbl.Update(id, func(cur R) (R, error) {
		// Unmarshalling onto the current row keeps every field the
		// request leaves out.
		if uerr := json.Unmarshal(body, &cur); uerr != nil {
			return cur, uerr
		}
		if res.finalize != nil {
			return res.finalize(cur)
		}
		return cur, nil
	})
	if !found {
		response.NotFound(w)
		return
	}
	if err != nil {
		response.Messages(w, http.StatusBadRequest, "Malformed JSON body")
		return
	}
	response.JSON(w, http.StatusOK, rec)
}

func (res *resource[R, D]) remove(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if !res.tbl.Delete(id) {
		response.NotFound(w)
		return
	}
	response.NoContent(w)
}

// draftToRecord projects a draft onto a fresh record through their shared
// JSON field names.
func draftToRecord[R any, D any](draft D) (R, error) {
	var rec R
	raw, err := json.Marshal(draft)
	if err != nil {
		return rec, err
	}
	if err := json.Unmarshal(raw, &rec); err != nil {
		return rec, err
	}
	return rec, nil
}

func pathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		response.Messages(w, http.StatusBadRequest, "Validation failed (numeric string is expected)")
		return 0, false
	}
	return id, true
}

func readAll(r *http.Request) ([]byte, error) {
	defer r.Body.Close()
	var buf json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// flatten turns a field→message map into a stable message list.
func flatten(errs map[string]string) []string {
	fields := make([]string, 0, len(errs))
	for f := range errs {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	msgs := make([]string, 0, len(fields))
	for _, f := range fields {
		msgs = append(msgs, fmt.Sprintf("%s: %s", f, errs[f]))
	}
	return msgs
}

// loginInput is the /auth/login request body.
type loginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// loginOutput mirrors the auth response shape the client expects.
type loginOutput struct {
	AccessToken  string  `json:"access_token"`
	LoggedInUser account `json:"loggedInUser"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var in loginInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		response.Messages(w, http.StatusBadRequest, "Malformed JSON body")
		return
	}

	acct, ok := s.store.Account(in.Username)
	if !ok || !auth.CheckPassword(acct.PasswordHash, in.Password) {
		response.Unauthorized(w, "Invalid username or password")
		return
	}

	token, err := auth.GenerateToken(acct.Username, acct.Name)
	if err != nil {
		response.Messages(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response.JSON(w, http.StatusOK, loginOutput{AccessToken: token, LoggedInUser: acct})
}

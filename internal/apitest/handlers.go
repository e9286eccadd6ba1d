package apitest

import (
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/volunteerbridge/matching-client/internal/core/domain"
	"github.com/volunteerbridge/matching-client/internal/core/ports"
)

func errJSON(c echo.Context, status int, msg string) error {
	return c.JSON(status, map[string]string{"error": msg})
}

// --- Auth ---

func (s *Server) handleRegister(c echo.Context) error {
	var req struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Role     string `json:"role"`
	}
	if err := c.Bind(&req); err != nil {
		return errJSON(c, http.StatusBadRequest, "invalid payload")
	}
	if req.Username == "" || req.Password == "" || !domain.ValidRole(req.Role) {
		return errJSON(c, http.StatusBadRequest, "username, password and a valid role are required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.MinCost)
	if err != nil {
		return errJSON(c, http.StatusInternalServerError, "internal error")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.userByName[req.Username]; exists {
		return errJSON(c, http.StatusConflict, "user already exists")
	}
	now := time.Now().UTC()
	s.nextID++
	user := &domain.User{
		ID: s.nextID, Username: req.Username, Email: req.Email,
		Role: req.Role, IsActive: true, CreatedAt: now, UpdatedAt: now,
	}
	s.users[user.ID] = user
	s.userByName[user.Username] = user.ID
	s.passwords[user.ID] = string(hash)
	return c.JSON(http.StatusCreated, user)
}

func (s *Server) handleLogin(c echo.Context) error {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		return errJSON(c, http.StatusBadRequest, "invalid payload")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.userByName[req.Username]
	if !ok {
		return errJSON(c, http.StatusUnauthorized, "invalid credentials")
	}
	if bcrypt.CompareHashAndPassword([]byte(s.passwords[id]), []byte(req.Password)) != nil {
		return errJSON(c, http.StatusUnauthorized, "invalid credentials")
	}
	return c.JSON(http.StatusOK, map[string]any{
		"token": s.mintToken(id, time.Now().Add(tokenTTL)),
		"user":  s.users[id],
	})
}

func (s *Server) handleLogout(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) handleGetProfile(c echo.Context) error {
	return c.JSON(http.StatusOK, currentUser(c))
}

func (s *Server) handleUpdateProfile(c echo.Context) error {
	var req struct {
		Email string `json:"email"`
	}
	if err := c.Bind(&req); err != nil {
		return errJSON(c, http.StatusBadRequest, "invalid payload")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	user := s.users[currentUser(c).ID]
	if req.Email != "" {
		user.Email = req.Email
		user.UpdatedAt = time.Now().UTC()
	}
	return c.JSON(http.StatusOK, user)
}

// --- Requester profile & requests ---

func (s *Server) handleCreateRequesterProfile(c echo.Context) error {
	var in ports.RequesterProfileInput
	if err := c.Bind(&in); err != nil {
		return errJSON(c, http.StatusBadRequest, "invalid payload")
	}
	if in.FirstName == "" || in.LastName == "" {
		return errJSON(c, http.StatusBadRequest, "first_name is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	user := currentUser(c)
	if _, exists := s.requesterProfiles[user.ID]; exists {
		return errJSON(c, http.StatusConflict, "profile already exists")
	}
	now := time.Now().UTC()
	s.nextID++
	profile := &domain.RequesterProfile{
		ID: s.nextID, UserID: user.ID, User: *user,
		FirstName: in.FirstName, LastName: in.LastName, Phone: in.Phone,
		Address: in.Address, DateOfBirth: in.DateOfBirth,
		EmergencyContact: in.EmergencyContact, MedicalInfo: in.MedicalInfo,
		SpecialNeeds: in.SpecialNeeds, CreatedAt: now, UpdatedAt: now,
	}
	s.requesterProfiles[user.ID] = profile
	return c.JSON(http.StatusCreated, profile)
}

func (s *Server) handleGetRequesterProfile(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	profile, ok := s.requesterProfiles[currentUser(c).ID]
	if !ok {
		return errJSON(c, http.StatusNotFound, "profile not found")
	}
	return c.JSON(http.StatusOK, profile)
}

func (s *Server) handleUpdateRequesterProfile(c echo.Context) error {
	var in ports.RequesterProfileInput
	if err := c.Bind(&in); err != nil {
		return errJSON(c, http.StatusBadRequest, "invalid payload")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	profile, ok := s.requesterProfiles[currentUser(c).ID]
	if !ok {
		return errJSON(c, http.StatusNotFound, "profile not found")
	}
	if in.FirstName != "" {
		profile.FirstName = in.FirstName
	}
	if in.LastName != "" {
		profile.LastName = in.LastName
	}
	if in.Phone != "" {
		profile.Phone = in.Phone
	}
	if in.Address != "" {
		profile.Address = in.Address
	}
	profile.UpdatedAt = time.Now().UTC()
	return c.JSON(http.StatusOK, profile)
}

func (s *Server) handleCreateRequest(c echo.Context) error {
	var in ports.CreateRequestInput
	if err := c.Bind(&in); err != nil {
		return errJSON(c, http.StatusBadRequest, "invalid payload")
	}
	if in.Title == "" || in.Description == "" {
		return errJSON(c, http.StatusBadRequest, "title is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	profile, ok := s.requesterProfiles[currentUser(c).ID]
	if !ok {
		return errJSON(c, http.StatusBadRequest, "requester profile required")
	}
	if s.categoryByID(in.CategoryID) == nil {
		return errJSON(c, http.StatusBadRequest, "unknown category")
	}

	urgency := domain.Urgency(in.Urgency)
	if in.Urgency == "" {
		urgency = domain.UrgencyMedium
	}
	if !urgency.Valid() {
		return errJSON(c, http.StatusBadRequest, "unknown urgency")
	}

	now := time.Now().UTC()
	s.nextID++
	req := &domain.Request{
		ID: s.nextID, RequesterID: profile.ID, CategoryID: in.CategoryID,
		Title: in.Title, Description: in.Description, Urgency: urgency,
		Status: domain.RequestOpen, PreferredDate: in.PreferredDate,
		Location: in.Location, SpecialNotes: in.SpecialNotes,
		CreatedAt: now, UpdatedAt: now,
	}
	s.requests[req.ID] = req
	return c.JSON(http.StatusCreated, s.embedRequest(req))
}

func (s *Server) handleListOwnRequests(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	profile, ok := s.requesterProfiles[currentUser(c).ID]
	if !ok {
		return errJSON(c, http.StatusNotFound, "profile not found")
	}
	out := []domain.Request{}
	for _, req := range s.sortedRequests() {
		if req.RequesterID == profile.ID {
			out = append(out, s.embedRequest(req))
		}
	}
	return c.JSON(http.StatusOK, out)
}

func (s *Server) handleGetOwnRequest(c echo.Context) error {
	id, _ := strconv.ParseInt(c.Param("id"), 10, 64)

	s.mu.Lock()
	defer s.mu.Unlock()
	profile, ok := s.requesterProfiles[currentUser(c).ID]
	req, found := s.requests[id]
	if !ok || !found || req.RequesterID != profile.ID {
		return errJSON(c, http.StatusNotFound, "request not found")
	}
	return c.JSON(http.StatusOK, s.embedRequest(req))
}

func (s *Server) handleUpdateOwnRequest(c echo.Context) error {
	id, _ := strconv.ParseInt(c.Param("id"), 10, 64)
	var in ports.UpdateRequestInput
	if err := c.Bind(&in); err != nil {
		return errJSON(c, http.StatusBadRequest, "invalid payload")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	profile, ok := s.requesterProfiles[currentUser(c).ID]
	req, found := s.requests[id]
	if !ok || !found || req.RequesterID != profile.ID {
		return errJSON(c, http.StatusNotFound, "request not found")
	}

	if in.Status != "" {
		next := domain.RequestStatus(in.Status)
		if next != req.Status && !req.Status.CanTransitionTo(next) {
			return errJSON(c, http.StatusBadRequest, "invalid status transition")
		}
		req.Status = next
	}
	if in.Title != "" {
		req.Title = in.Title
	}
	if in.Description != "" {
		req.Description = in.Description
	}
	if in.Urgency != "" {
		req.Urgency = domain.Urgency(in.Urgency)
	}
	if in.Location != "" {
		req.Location = in.Location
	}
	if in.SpecialNotes != "" {
		req.SpecialNotes = in.SpecialNotes
	}
	req.UpdatedAt = time.Now().UTC()
	return c.JSON(http.StatusOK, s.embedRequest(req))
}

func (s *Server) handleRequesterHistory(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	profile, ok := s.requesterProfiles[currentUser(c).ID]
	if !ok {
		return errJSON(c, http.StatusNotFound, "profile not found")
	}
	matches := s.filterMatches(c, func(m *domain.Match) bool {
		return m.RequesterID == profile.ID
	})
	return c.JSON(http.StatusOK, paginate(c, matches))
}

// --- Responder profile, search, shortlist, matches ---

func (s *Server) handleCreateResponderProfile(c echo.Context) error {
	var in ports.ResponderProfileInput
	if err := c.Bind(&in); err != nil {
		return errJSON(c, http.StatusBadRequest, "invalid payload")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	company := s.companyByID(in.CompanyID)
	if company == nil {
		return errJSON(c, http.StatusBadRequest, "unknown company")
	}
	user := currentUser(c)
	if _, exists := s.responderProfiles[user.ID]; exists {
		return errJSON(c, http.StatusConflict, "profile already exists")
	}
	now := time.Now().UTC()
	s.nextID++
	profile := &domain.ResponderProfile{
		ID: s.nextID, UserID: user.ID, User: *user,
		CompanyID: company.ID, Company: *company,
		FirstName: in.FirstName, LastName: in.LastName, Phone: in.Phone,
		Department: in.Department, Position: in.Position,
		CreatedAt: now, UpdatedAt: now,
	}
	s.responderProfiles[user.ID] = profile
	return c.JSON(http.StatusCreated, profile)
}

func (s *Server) handleGetResponderProfile(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	profile, ok := s.responderProfiles[currentUser(c).ID]
	if !ok {
		return errJSON(c, http.StatusNotFound, "profile not found")
	}
	return c.JSON(http.StatusOK, profile)
}

func (s *Server) handleUpdateResponderProfile(c echo.Context) error {
	var in ports.ResponderProfileInput
	if err := c.Bind(&in); err != nil {
		return errJSON(c, http.StatusBadRequest, "invalid payload")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	profile, ok := s.responderProfiles[currentUser(c).ID]
	if !ok {
		return errJSON(c, http.StatusNotFound, "profile not found")
	}
	if in.FirstName != "" {
		profile.FirstName = in.FirstName
	}
	if in.LastName != "" {
		profile.LastName = in.LastName
	}
	if in.Department != "" {
		profile.Department = in.Department
	}
	if in.Position != "" {
		profile.Position = in.Position
	}
	profile.UpdatedAt = time.Now().UTC()
	return c.JSON(http.StatusOK, profile)
}

func (s *Server) handleSearchRequests(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	categoryID, _ := strconv.ParseInt(c.QueryParam("category_id"), 10, 64)
	status := c.QueryParam("status")
	urgency := c.QueryParam("urgency")
	location := strings.ToLower(c.QueryParam("location"))
	search := strings.ToLower(c.QueryParam("search"))

	out := []domain.Request{}
	for _, req := range s.sortedRequests() {
		if categoryID != 0 && req.CategoryID != categoryID {
			continue
		}
		if status != "" && string(req.Status) != status {
			continue
		}
		if urgency != "" && string(req.Urgency) != urgency {
			continue
		}
		if location != "" && !strings.Contains(strings.ToLower(req.Location), location) {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(req.Title), search) &&
			!strings.Contains(strings.ToLower(req.Description), search) {
			continue
		}
		out = append(out, s.embedRequest(req))
	}
	return c.JSON(http.StatusOK, paginate(c, out))
}

func (s *Server) handleGetRequest(c echo.Context) error {
	id, _ := strconv.ParseInt(c.Param("id"), 10, 64)

	s.mu.Lock()
	defer s.mu.Unlock()
	req, ok := s.requests[id]
	if !ok {
		return errJSON(c, http.StatusNotFound, "request not found")
	}
	req.ViewCount++
	return c.JSON(http.StatusOK, s.embedRequest(req))
}

func (s *Server) handleAddToShortlist(c echo.Context) error {
	var in ports.CreateShortlistInput
	if err := c.Bind(&in); err != nil {
		return errJSON(c, http.StatusBadRequest, "invalid payload")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	profile, ok := s.responderProfiles[currentUser(c).ID]
	if !ok {
		return errJSON(c, http.StatusBadRequest, "responder profile required")
	}
	req, found := s.requests[in.RequestID]
	if !found {
		return errJSON(c, http.StatusBadRequest, "unknown request")
	}

	priority := domain.Priority(in.Priority)
	if in.Priority == "" {
		priority = domain.PriorityMedium
	}
	if !priority.Valid() {
		return errJSON(c, http.StatusBadRequest, "unknown priority")
	}

	now := time.Now().UTC()
	s.nextID++
	entry := &domain.ShortlistEntry{
		ID: s.nextID, ResponderID: profile.ID, RequestID: req.ID,
		Notes: in.Notes, Priority: priority, CreatedAt: now, UpdatedAt: now,
	}
	s.shortlist[entry.ID] = entry
	// The only request-side effect of shortlisting: the counter.
	req.ShortlistCount++

	out := *entry
	out.Responder = *profile
	out.Request = s.embedRequest(req)
	return c.JSON(http.StatusCreated, out)
}

func (s *Server) handleListShortlist(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	profile, ok := s.responderProfiles[currentUser(c).ID]
	if !ok {
		return errJSON(c, http.StatusNotFound, "profile not found")
	}
	out := []domain.ShortlistEntry{}
	ids := make([]int64, 0, len(s.shortlist))
	for id := range s.shortlist {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for _, id := range ids {
		entry := s.shortlist[id]
		if entry.ResponderID != profile.ID {
			continue
		}
		e := *entry
		e.Responder = *profile
		if req, ok := s.requests[entry.RequestID]; ok {
			e.Request = s.embedRequest(req)
		}
		out = append(out, e)
	}
	return c.JSON(http.StatusOK, out)
}

func (s *Server) handleRemoveFromShortlist(c echo.Context) error {
	id, _ := strconv.ParseInt(c.Param("id"), 10, 64)

	s.mu.Lock()
	defer s.mu.Unlock()
	profile, ok := s.responderProfiles[currentUser(c).ID]
	entry, found := s.shortlist[id]
	if !ok || !found || entry.ResponderID != profile.ID {
		return errJSON(c, http.StatusNotFound, "shortlist entry not found")
	}
	delete(s.shortlist, id)
	if req, ok := s.requests[entry.RequestID]; ok && req.ShortlistCount > 0 {
		req.ShortlistCount--
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) handleCreateMatch(c echo.Context) error {
	var in ports.CreateMatchInput
	if err := c.Bind(&in); err != nil {
		return errJSON(c, http.StatusBadRequest, "invalid payload")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	profile, ok := s.responderProfiles[currentUser(c).ID]
	if !ok {
		return errJSON(c, http.StatusBadRequest, "responder profile required")
	}
	req, found := s.requests[in.RequestID]
	if !found {
		return errJSON(c, http.StatusBadRequest, "unknown request")
	}
	if req.Status != domain.RequestOpen {
		return errJSON(c, http.StatusBadRequest, "request is not open")
	}

	now := time.Now().UTC()
	s.nextID++
	match := &domain.Match{
		ID: s.nextID, ResponderID: profile.ID, RequestID: req.ID,
		RequesterID: req.RequesterID, Status: domain.MatchPending,
		StartDate: in.StartDate, Notes: in.Notes,
		CreatedAt: now, UpdatedAt: now,
	}
	s.matches[match.ID] = match
	// Matching takes the request off the open pool.
	req.Status = domain.RequestInProgress
	req.UpdatedAt = now
	return c.JSON(http.StatusCreated, s.embedMatch(match))
}

func (s *Server) handleListMatches(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	profile, ok := s.responderProfiles[currentUser(c).ID]
	if !ok {
		return errJSON(c, http.StatusNotFound, "profile not found")
	}
	matches := s.filterMatches(c, func(m *domain.Match) bool {
		return m.ResponderID == profile.ID
	})
	return c.JSON(http.StatusOK, paginate(c, matches))
}

func (s *Server) handleGetMatch(c echo.Context) error {
	id, _ := strconv.ParseInt(c.Param("id"), 10, 64)

	s.mu.Lock()
	defer s.mu.Unlock()
	profile, ok := s.responderProfiles[currentUser(c).ID]
	match, found := s.matches[id]
	if !ok || !found || match.ResponderID != profile.ID {
		return errJSON(c, http.StatusNotFound, "match not found")
	}
	return c.JSON(http.StatusOK, s.embedMatch(match))
}

func (s *Server) handleUpdateMatch(c echo.Context) error {
	id, _ := strconv.ParseInt(c.Param("id"), 10, 64)
	var in ports.UpdateMatchInput
	if err := c.Bind(&in); err != nil {
		return errJSON(c, http.StatusBadRequest, "invalid payload")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	profile, ok := s.responderProfiles[currentUser(c).ID]
	match, found := s.matches[id]
	if !ok || !found || match.ResponderID != profile.ID {
		return errJSON(c, http.StatusNotFound, "match not found")
	}

	now := time.Now().UTC()
	if in.Status != "" {
		next := domain.MatchStatus(in.Status)
		if next != match.Status && !match.Status.CanTransitionTo(next) {
			return errJSON(c, http.StatusBadRequest, "invalid status transition")
		}
		match.Status = next
		req := s.requests[match.RequestID]
		switch next {
		case domain.MatchCompleted:
			match.CompletedAt = &now
			if req != nil {
				req.Status = domain.RequestCompleted
				req.UpdatedAt = now
			}
		case domain.MatchCancelled:
			if req != nil && !req.Status.Terminal() {
				req.Status = domain.RequestOpen
				req.UpdatedAt = now
			}
		}
	}
	if in.StartDate != "" {
		match.StartDate = in.StartDate
	}
	if in.EndDate != "" {
		match.EndDate = in.EndDate
	}
	if in.Rating != nil {
		match.Rating = in.Rating
	}
	if in.Feedback != "" {
		match.Feedback = in.Feedback
	}
	if in.Notes != "" {
		match.Notes = in.Notes
	}
	match.UpdatedAt = now
	return c.JSON(http.StatusOK, s.embedMatch(match))
}

func (s *Server) handleResponderHistory(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	profile, ok := s.responderProfiles[currentUser(c).ID]
	if !ok {
		return errJSON(c, http.StatusNotFound, "profile not found")
	}
	matches := s.filterMatches(c, func(m *domain.Match) bool {
		return m.ResponderID == profile.ID && m.Status.Terminal()
	})
	return c.JSON(http.StatusOK, paginate(c, matches))
}

// --- Catalogs ---

func (s *Server) handleListCategories(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.CatalogHits++
	return c.JSON(http.StatusOK, s.categories)
}

func (s *Server) handleListCompanies(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.CatalogHits++
	return c.JSON(http.StatusOK, s.companies)
}

// --- Internals (callers hold s.mu) ---

func (s *Server) categoryByID(id int64) *domain.ServiceCategory {
	for i := range s.categories {
		if s.categories[i].ID == id {
			return &s.categories[i]
		}
	}
	return nil
}

func (s *Server) companyByID(id int64) *domain.Company {
	for i := range s.companies {
		if s.companies[i].ID == id {
			return &s.companies[i]
		}
	}
	return nil
}

func (s *Server) requesterProfileByID(id int64) *domain.RequesterProfile {
	for _, p := range s.requesterProfiles {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func (s *Server) responderProfileByID(id int64) *domain.ResponderProfile {
	for _, p := range s.responderProfiles {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func (s *Server) sortedRequests() []*domain.Request {
	out := make([]*domain.Request, 0, len(s.requests))
	for _, req := range s.requests {
		out = append(out, req)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// embedRequest returns a copy with its relations pre-joined, the way the
// real platform serves list and detail payloads.
func (s *Server) embedRequest(req *domain.Request) domain.Request {
	out := *req
	if cat := s.categoryByID(req.CategoryID); cat != nil {
		out.Category = *cat
	}
	if profile := s.requesterProfileByID(req.RequesterID); profile != nil {
		out.Requester = *profile
	}
	return out
}

func (s *Server) embedMatch(m *domain.Match) domain.Match {
	out := *m
	if req, ok := s.requests[m.RequestID]; ok {
		out.Request = s.embedRequest(req)
	}
	if profile := s.responderProfileByID(m.ResponderID); profile != nil {
		out.Responder = *profile
	}
	if profile := s.requesterProfileByID(m.RequesterID); profile != nil {
		out.Requester = *profile
	}
	return out
}

// filterMatches applies the match query parameters and returns embedded
// copies in id order.
func (s *Server) filterMatches(c echo.Context, keep func(*domain.Match) bool) []domain.Match {
	responderID, _ := strconv.ParseInt(c.QueryParam("csr_rep_id"), 10, 64)
	requesterID, _ := strconv.ParseInt(c.QueryParam("pin_id"), 10, 64)
	categoryID, _ := strconv.ParseInt(c.QueryParam("category_id"), 10, 64)
	status := c.QueryParam("status")

	ids := make([]int64, 0, len(s.matches))
	for id := range s.matches {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := []domain.Match{}
	for _, id := range ids {
		m := s.matches[id]
		if !keep(m) {
			continue
		}
		if responderID != 0 && m.ResponderID != responderID {
			continue
		}
		if requesterID != 0 && m.RequesterID != requesterID {
			continue
		}
		if status != "" && string(m.Status) != status {
			continue
		}
		if categoryID != 0 {
			req, ok := s.requests[m.RequestID]
			if !ok || req.CategoryID != categoryID {
				continue
			}
		}
		out = append(out, s.embedMatch(m))
	}
	return out
}

// paginate slices items per the page/page_size query parameters and wraps
// them in the platform's envelope. Pages are 1-based.
func paginate[T any](c echo.Context, items []T) ports.Page[T] {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	if page < 1 {
		page = 1
	}
	size, _ := strconv.Atoi(c.QueryParam("page_size"))
	if size < 1 {
		size = 10
	}

	total := len(items)
	start := (page - 1) * size
	if start > total {
		start = total
	}
	end := start + size
	if end > total {
		end = total
	}
	return ports.Page[T]{
		Data:       items[start:end],
		Pagination: ports.Pagination{Page: page, PageSize: size, Total: total},
	}
}

package http

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/tazhibayda/interview-service/internal/domain"
	"github.com/tazhibayda/interview-service/internal/log"
	"github.com/tazhibayda/interview-service/internal/metrics"
	"github.com/tazhibayda/interview-service/internal/queue"
	"github.com/tazhibayda/interview-service/internal/repo"
	"github.com/tazhibayda/interview-service/internal/security"
)

type Handler struct {
	Store     *repo.Store
	Events    queue.Publisher
	StaticDir string
}

func NewHandler(store *repo.Store, pub queue.Publisher, staticDir string) *Handler {
	return &Handler{Store: store, Events: pub, StaticDir: staticDir}
}

// serverError hides the failure detail from the client; it only gets logged.
func serverError(c *gin.Context, msg string, err error) {
	log.L().Error(msg, zap.Error(err), zap.String("request_id", c.GetString(requestIDKey)))
	c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
}

// publish fires the event after the response; broker trouble never
// surfaces to the client.
func (h *Handler) publish(key string, event any, reqID string) {
	go func() {
		if err := h.Events.Publish(context.Background(), queue.Exchange, key, event, reqID); err != nil {
			log.L().Warn("event publish failed", zap.String("key", key), zap.Error(err))
		}
	}()
}

type registerReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register godoc
// @Summary Register a new account
// @Tags users
// @Accept json
// @Produce json
// @Param payload body registerReq true "name, email, password"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/users/register [post]
func (h *Handler) Register(c *gin.Context) {
	var in registerReq
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	existing, err := h.Store.FindUserByEmail(c.Request.Context(), in.Email)
	if err != nil {
		serverError(c, "register: email lookup failed", err)
		return
	}
	if existing != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "User already exists"})
		return
	}

	hash, err := security.HashPassword(in.Password)
	if err != nil {
		serverError(c, "register: hash failed", err)
		return
	}

	u := &domain.User{Name: in.Name, Email: in.Email, PasswordHash: hash}
	if err := h.Store.CreateUser(c.Request.Context(), u); err != nil {
		// the unique index closes the lookup/insert race
		if err == repo.ErrEmailTaken {
			c.JSON(http.StatusBadRequest, gin.H{"message": "User already exists"})
			return
		}
		serverError(c, "register: insert failed", err)
		return
	}

	metrics.UsersRegistered.Inc()
	h.publish("user.registered",
		queue.UserRegistered{UserID: u.ID, Email: u.Email, Name: u.Name},
		c.GetString(requestIDKey))

	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"user":    u,
		"userId":  u.ID,
	})
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login godoc
// @Summary Check credentials and return the account
// @Tags users
// @Accept json
// @Produce json
// @Param payload body loginReq true "email, password"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/users/login [post]
func (h *Handler) Login(c *gin.Context) {
	var in loginReq
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	u, err := h.Store.FindUserByEmail(c.Request.Context(), in.Email)
	if err != nil {
		serverError(c, "login: email lookup failed", err)
		return
	}
	if u == nil || !security.CheckPassword(u.PasswordHash, in.Password) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid credentials"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"user":    u,
	})
}

type saveInterviewReq struct {
	UserID    string        `json:"userId"`
	Questions []interface{} `json:"questions"`
	Answers   []interface{} `json:"answers"`
	Feedback  interface{}   `json:"feedback"`
	Settings  interface{}   `json:"settings"`
	Scores    interface{}   `json:"scores"`
}

// SaveInterview godoc
// @Summary Save a completed interview session
// @Tags interviews
// @Accept json
// @Produce json
// @Param payload body saveInterviewReq true "session payload"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/interviews [post]
func (h *Handler) SaveInterview(c *gin.Context) {
	var in saveInterviewReq
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}
	userID, err := primitive.ObjectIDFromHex(in.UserID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid user id"})
		return
	}

	// the userId is taken on trust; nothing checks it resolves to an account
	iv := &domain.Interview{
		UserID:    userID,
		Questions: in.Questions,
		Answers:   in.Answers,
		Feedback:  in.Feedback,
		Settings:  in.Settings,
		Scores:    in.Scores,
	}
	if err := h.Store.SaveInterview(c.Request.Context(), iv); err != nil {
		serverError(c, "interview: insert failed", err)
		return
	}

	metrics.InterviewsSaved.Inc()
	h.publish("interview.saved",
		queue.InterviewSaved{InterviewID: iv.ID, UserID: iv.UserID},
		c.GetString(requestIDKey))

	c.JSON(http.StatusCreated, gin.H{
		"message":     "Interview saved successfully",
		"interviewId": iv.ID,
	})
}

// ListInterviewsByUser godoc
// @Summary List a user's interview sessions, newest first
// @Tags interviews
// @Produce json
// @Param userId path string true "user id"
// @Success 200 {array} domain.Interview
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/interviews/user/{userId} [get]
func (h *Handler) ListInterviewsByUser(c *gin.Context) {
	userID, err := primitive.ObjectIDFromHex(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid user id"})
		return
	}
	items, err := h.Store.ListInterviewsByUser(c.Request.Context(), userID)
	if err != nil {
		serverError(c, "interview: list failed", err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// GetInterview godoc
// @Summary Fetch one interview session by id
// @Tags interviews
// @Produce json
// @Param id path string true "interview id"
// @Success 200 {object} domain.Interview
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/interviews/{id} [get]
func (h *Handler) GetInterview(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		// a malformed id cannot name any document
		c.JSON(http.StatusNotFound, gin.H{"message": "Interview not found"})
		return
	}
	iv, err := h.Store.FindInterviewByID(c.Request.Context(), id)
	if err == repo.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"message": "Interview not found"})
		return
	}
	if err != nil {
		serverError(c, "interview: get failed", err)
		return
	}
	c.JSON(http.StatusOK, iv)
}

// QuestionsByCategory godoc
// @Summary List catalog questions in a category
// @Tags questions
// @Produce json
// @Param category path string true "category (exact match)"
// @Success 200 {array} domain.Question
// @Failure 500 {object} map[string]string
// @Router /api/questions/{category} [get]
func (h *Handler) QuestionsByCategory(c *gin.Context) {
	items, err := h.Store.ListQuestionsByCategory(c.Request.Context(), c.Param("category"))
	if err != nil {
		serverError(c, "questions: list failed", err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) Healthz(c *gin.Context) {
	if err := h.Store.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// SPA serves the single-page app for any unmatched non-API GET. Real
// files under StaticDir are served as-is, everything else falls back to
// index.html so client-side routing works.
func (h *Handler) SPA(c *gin.Context) {
	p := c.Request.URL.Path
	if p == "/api" || strings.HasPrefix(p, "/api/") {
		c.JSON(http.StatusNotFound, gin.H{"message": "Not found"})
		return
	}
	if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
		c.JSON(http.StatusNotFound, gin.H{"message": "Not found"})
		return
	}
	file := filepath.Join(h.StaticDir, filepath.Clean("/"+p))
	if st, err := os.Stat(file); err == nil && !st.IsDir() {
		c.File(file)
		return
	}
	c.File(filepath.Join(h.StaticDir, "index.html"))
}

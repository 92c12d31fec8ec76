package auth

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// Handler 认证接口处理器
type Handler struct {
	users  *UserStore
	secret string
	ttl    time.Duration
}

// NewHandler 创建认证处理器
func NewHandler(users *UserStore, secret string, ttl time.Duration) *Handler {
	return &Handler{users: users, secret: secret, ttl: ttl}
}

// RegisterRoutes 注册认证路由（不经过认证中间件）
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/signup", h.SignUp)
	router.POST("/signin", h.SignIn)
	router.POST("/signout", h.SignOut)
}

// RegisterProtectedRoutes 注册需要登录的认证路由
func (h *Handler) RegisterProtectedRoutes(router *gin.RouterGroup) {
	router.GET("/me", h.Me)
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type sessionResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// SignUp 注册新账户并直接签发令牌
// POST /api/auth/signup
func (h *Handler) SignUp(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求格式错误"})
		return
	}
	req.Email = NormalizeEmail(req.Email)
	if req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "邮箱和密码不能为空"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "密码处理失败"})
		return
	}

	user, err := h.users.CreateUser(req.Email, string(hash))
	if err != nil {
		if errors.Is(err, ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": "该邮箱已注册"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "创建账户失败"})
		return
	}

	token, err := GenerateToken(h.secret, user, h.ttl)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "签发令牌失败"})
		return
	}
	c.JSON(http.StatusCreated, sessionResponse{Token: token, User: user})
}

// SignIn 邮箱密码登录
// POST /api/auth/signin
func (h *Handler) SignIn(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求格式错误"})
		return
	}

	user, err := h.users.GetUserByEmail(req.Email)
	if err != nil {
		// 不区分"用户不存在"与"密码错误"，避免枚举邮箱
		c.JSON(http.StatusUnauthorized, gin.H{"error": "邮箱或密码错误"})
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "邮箱或密码错误"})
		return
	}

	token, err := GenerateToken(h.secret, user, h.ttl)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "签发令牌失败"})
		return
	}
	c.JSON(http.StatusOK, sessionResponse{Token: token, User: user})
}

// SignOut 登出
// POST /api/auth/signout
// 令牌无服务端状态，客户端丢弃即完成登出
func (h *Handler) SignOut(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "已登出"})
}

// Me 返回当前登录用户
// GET /api/auth/me
func (h *Handler) Me(c *gin.Context) {
	userID, ok := c.Get(CtxUserIDKey)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "未登录"})
		return
	}
	user, err := h.users.GetUserByID(userID.(int64))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "用户不存在"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

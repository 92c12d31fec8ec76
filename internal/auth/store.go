// Package auth 认证边界：邮箱密码注册/登录，JWT 会话令牌
//
// 企划数据全部在内存中，账户是唯一需要持久化的部分，落在 SQLite
package auth

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaFS embed.FS

// ErrUserNotFound 用户不存在
var ErrUserNotFound = errors.New("user not found")

// ErrEmailTaken 邮箱已被注册
var ErrEmailTaken = errors.New("email already registered")

// User 用户账户
type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

// UserStore SQLite 用户存储
type UserStore struct {
	db *sql.DB
}

// NewUserStore 打开数据库并初始化表结构
func NewUserStore(dbPath string) (*UserStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	// SQLite 单连接
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	st := &UserStore{db: db}
	if err := st.initSchema(); err != nil {
		return nil, fmt.Errorf("initialize schema: %w", err)
	}
	return st, nil
}

func (s *UserStore) initSchema() error {
	schemaSQL, err := schemaFS.ReadFile("schema.sql")
	if err != nil {
		return fmt.Errorf("read schema.sql: %w", err)
	}
	if _, err := s.db.Exec(string(schemaSQL)); err != nil {
		return fmt.Errorf("execute schema: %w", err)
	}
	return nil
}

// Close 关闭数据库连接
func (s *UserStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// NormalizeEmail 邮箱规范化：去空白并转小写
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// CreateUser 创建用户，邮箱冲突返回 ErrEmailTaken
func (s *UserStore) CreateUser(email, passwordHash string) (*User, error) {
	email = NormalizeEmail(email)
	res, err := s.db.Exec(
		`INSERT INTO users (email, password_hash) VALUES (?, ?)`,
		email, passwordHash,
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}
	return s.GetUserByID(id)
}

// GetUserByEmail 按邮箱查找用户
func (s *UserStore) GetUserByEmail(email string) (*User, error) {
	return s.scanUser(s.db.QueryRow(
		`SELECT id, email, password_hash, created_at FROM users WHERE email = ?`,
		NormalizeEmail(email),
	))
}

// GetUserByID 按编号查找用户
func (s *UserStore) GetUserByID(id int64) (*User, error) {
	return s.scanUser(s.db.QueryRow(
		`SELECT id, email, password_hash, created_at FROM users WHERE id = ?`,
		id,
	))
}

func (s *UserStore) scanUser(row *sql.Row) (*User, error) {
	var u User
	if err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}
	return &u, nil
}

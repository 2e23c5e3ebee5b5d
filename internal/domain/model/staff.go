package model

import "time"

// StaffRole distinguishes back-office administrators from PDV sellers.
type StaffRole string

const (
	StaffRoleAdmin  StaffRole = "admin"
	StaffRoleSeller StaffRole = "seller"
)

// Staff represents a back-office employee account.
type Staff struct {
	ID           int64
	Login        string
	PasswordHash string
	Role         StaffRole
	CreatedAt    time.Time
}

// Package entity defines data structures shared by the web layer.
package entity

import (
	"math"
	"net"
	"strings"
	"time"

	"extractor/util/common"
)

// Msg is the standard JSON response envelope.
type Msg struct {
	Success bool   `json:"success"`
	Msg     string `json:"msg"`
	Obj     any    `json:"obj"`
}

// AllSetting contains the runtime-tunable settings of the panel.
type AllSetting struct {
	WebListen     string `json:"webListen" form:"webListen"`         // Listen IP address
	WebDomain     string `json:"webDomain" form:"webDomain"`         // Domain for host validation
	WebPort       int    `json:"webPort" form:"webPort"`             // Listen port
	WebBasePath   string `json:"webBasePath" form:"webBasePath"`     // Base path for all URLs
	SessionMaxAge int    `json:"sessionMaxAge" form:"sessionMaxAge"` // Session maximum age in minutes

	PageSize     int    `json:"pageSize" form:"pageSize"` // Items per page in result lists
	TimeLocation string `json:"timeLocation" form:"timeLocation"`

	TwoFactorEnable bool   `json:"twoFactorEnable" form:"twoFactorEnable"`
	TwoFactorToken  string `json:"twoFactorToken" form:"twoFactorToken"`

	UploadFolder        string `json:"uploadFolder" form:"uploadFolder"`               // Where uploaded archives land
	UploadRetentionDays int    `json:"uploadRetentionDays" form:"uploadRetentionDays"` // Days before the cleanup job removes an archive
	CleanupCron         string `json:"cleanupCron" form:"cleanupCron"`                 // Schedule of the cleanup job
}

// CheckValid validates the settings before they are persisted.
func (s *AllSetting) CheckValid() error {
	if s.WebListen != "" {
		ip := net.ParseIP(s.WebListen)
		if ip == nil {
			return common.NewError("web listen is not valid ip:", s.WebListen)
		}
	}

	if s.WebPort <= 0 || s.WebPort > math.MaxUint16 {
		return common.NewError("web port is not a valid port:", s.WebPort)
	}

	if s.SessionMaxAge <= 0 {
		return common.NewError("session max age must be positive:", s.SessionMaxAge)
	}

	if s.UploadRetentionDays < 0 {
		return common.NewError("upload retention days must not be negative:", s.UploadRetentionDays)
	}

	if !strings.HasPrefix(s.WebBasePath, "/") {
		s.WebBasePath = "/" + s.WebBasePath
	}
	if !strings.HasSuffix(s.WebBasePath, "/") {
		s.WebBasePath += "/"
	}

	_, err := time.LoadLocation(s.TimeLocation)
	if err != nil {
		return common.NewError("time location not exist:", s.TimeLocation)
	}

	return nil
}

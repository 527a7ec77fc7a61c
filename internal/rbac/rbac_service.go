package rbac

import (
	"sync"

	"go-checkin/internal/domain"

	"github.com/casbin/casbin/v2"
	"go.uber.org/zap"
)

//go:generate mockgen -source=rbac_service.go -destination=mock/rbac_service_mock.go -package=mock
type Service interface {
	Enforce(req domain.EnforceRequest) (bool, error)
	Permissions(role string) ([][]string, error)
}

type service struct {
	enforcer *casbin.Enforcer
	mu       sync.RWMutex
	logger   *zap.Logger
}

// NewService loads policy into the enforcer once; it is read-only afterwards.
func NewService(enforcer *casbin.Enforcer, policy Policy) (Service, error) {
	s := &service{
		enforcer: enforcer,
		logger:   zap.L().Named("rbac.service"),
	}
	if err := s.load(policy); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *service) load(policy Policy) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.enforcer.ClearPolicy()

	for _, in := range policy.Inherits {
		if _, err := s.enforcer.AddGroupingPolicy(in.Role, in.Parent); err != nil {
			return err
		}
	}

	for _, p := range policy.Permissions {
		if _, err := s.enforcer.AddPolicy(p.Role, p.Resource, p.Action); err != nil {
			return err
		}
	}

	s.logger.Info("rbac policy loaded",
		zap.Int("permissions", len(policy.Permissions)),
		zap.Int("inherits", len(policy.Inherits)),
	)
	return nil
}

func (s *service) Enforce(req domain.EnforceRequest) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	allowed, err := s.enforcer.Enforce(req.Role, req.Resource, req.Action)
	if err != nil {
		s.logger.Error("rbac enforce failed",
			zap.String("role", req.Role),
			zap.String("resource", req.Resource),
			zap.String("action", req.Action),
			zap.Error(err),
		)
		return false, err
	}

	s.logger.Debug("rbac enforce result",
		zap.String("role", req.Role),
		zap.String("resource", req.Resource),
		zap.String("action", req.Action),
		zap.Bool("allowed", allowed),
	)
	return allowed, nil
}

// Permissions lists [role, resource, action] rules the role holds, inherited ones included.
func (s *service) Permissions(role string) ([][]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.enforcer.GetImplicitPermissionsForUser(role)
}

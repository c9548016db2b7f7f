package inject

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const mainHeader = "Rails.application.routes.draw do\n"

func TestInjectRoute(t *testing.T) {
	content := mainHeader + "  root 'site#index'\nend\n"

	got, out := InjectRoute(content, RouteRequest{Header: mainHeader, ScopePath: "test_models"})

	assert.Equal(t, StatusInjected, out.Status)
	assert.Empty(t, out.Warning)
	assert.Equal(t, mainHeader+"  resources :test_models\n  root 'site#index'\nend\n", got)
}

func TestInjectRoute_NamespacePlacement(t *testing.T) {
	content := mainHeader + "end\n"

	got, out := InjectRoute(content, RouteRequest{Header: mainHeader, ScopePath: "test_models", Namespace: "admin"})

	assert.Equal(t, StatusInjected, out.Status)
	// the resource line follows the draw header, ahead of the new empty namespace
	assert.Equal(t, mainHeader+"  resources :test_models\n  namespace :admin do\n  end\nend\n", got)
}

func TestInjectRoute_ExistingNamespace(t *testing.T) {
	content := mainHeader + "  namespace :admin do\n  end\nend\n"

	got, out := InjectRoute(content, RouteRequest{Header: mainHeader, ScopePath: "users", Namespace: "admin"})

	assert.Equal(t, StatusInjected, out.Status)
	assert.Equal(t, mainHeader+"  resources :users\n  namespace :admin do\n  end\nend\n", got)
}

func TestInjectRoute_Idempotent(t *testing.T) {
	req := RouteRequest{Header: mainHeader, ScopePath: "test_models", Namespace: "admin"}

	once, _ := InjectRoute(mainHeader+"end\n", req)
	twice, out := InjectRoute(once, req)

	assert.Equal(t, once, twice)
	assert.Equal(t, StatusAlreadyPresent, out.Status)
}

func TestInjectRoute_EngineHeader(t *testing.T) {
	header := "Admin::Engine.routes.draw do\n"

	got, out := InjectRoute(NewRoutesFile(header), RouteRequest{Header: header, ScopePath: "users"})

	assert.Equal(t, StatusInjected, out.Status)
	assert.Equal(t, header+"  resources :users\nend\n", got)
}

func TestInjectRoute_MissingHeader(t *testing.T) {
	content := "Rails.application.routes.draw do |map|\nend\n"

	got, out := InjectRoute(content, RouteRequest{Header: mainHeader, ScopePath: "users", Namespace: "admin"})

	assert.Equal(t, content, got)
	assert.Equal(t, StatusSkipped, out.Status)
	assert.Contains(t, out.Warning, "resources :users")
}

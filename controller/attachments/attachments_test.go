package attachments

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"comphq/services/attachment"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubService returns canned results so the HTTP mapping can be tested in
// isolation from the service.
type stubService struct {
	created attachment.Result
	deleted attachment.Result
	granted attachment.Result

	gotAttachmentID string
	gotOrgID        string
}

func (s *stubService) CreateAttachment(_ context.Context, in attachment.CreateAttachmentInput) attachment.Result {
	s.gotOrgID = in.OrganizationID
	return s.created
}

func (s *stubService) DeleteAttachment(_ context.Context, attachmentID, orgID string) attachment.Result {
	s.gotAttachmentID = attachmentID
	s.gotOrgID = orgID
	return s.deleted
}

func (s *stubService) GetAttachmentAccessURL(_ context.Context, attachmentID, orgID string) attachment.Result {
	s.gotAttachmentID = attachmentID
	s.gotOrgID = orgID
	return s.granted
}

// routerFor registers the handlers behind a stub of the auth middleware that
// plants the tenant directly on the context.
func routerFor(svc *stubService, orgID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	group := router.Group("/attachment", func(c *gin.Context) {
		c.Set("userId", uint(1))
		c.Set("orgId", orgID)
	})
	group.POST("/create", func(c *gin.Context) { CreateAttachment(c, svc) })
	group.DELETE("/delete/:attachmentid", func(c *gin.Context) { DeleteAttachment(c, svc) })
	group.GET("/url/:attachmentid", func(c *gin.Context) { GetAttachmentURL(c, svc) })
	return router
}

func TestGetAttachmentURLEndpoint(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &stubService{granted: attachment.Result{OK: true, Data: attachment.AccessGrant{SignedURL: "https://signed.example.com/k"}}}
		router := routerFor(svc, "org1")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/attachment/url/a1", nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "a1", svc.gotAttachmentID)
		assert.Equal(t, "org1", svc.gotOrgID)
		assert.Contains(t, w.Body.String(), "signed.example.com")
	})

	t.Run("failure mapping", func(t *testing.T) {
		cases := map[attachment.Reason]int{
			attachment.ReasonNotAuthorized:         http.StatusUnauthorized,
			attachment.ReasonNotFoundOrDenied:      http.StatusNotFound,
			attachment.ReasonUnsupportedEntityType: http.StatusUnprocessableEntity,
			attachment.ReasonMalformedReference:    http.StatusUnprocessableEntity,
			attachment.ReasonStorageUnavailable:    http.StatusServiceUnavailable,
			attachment.ReasonStorageError:          http.StatusInternalServerError,
			attachment.ReasonRequestFailed:         http.StatusInternalServerError,
		}
		for reason, status := range cases {
			svc := &stubService{granted: attachment.Result{OK: false, Error: "failed", Reason: reason}}
			router := routerFor(svc, "org1")

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/attachment/url/a1", nil))
			assert.Equal(t, status, w.Code, string(reason))
		}
	})
}

func TestDeleteAttachmentEndpoint(t *testing.T) {
	svc := &stubService{deleted: attachment.Result{OK: true, Data: attachment.DeletedAttachment{DeletedAttachmentID: "a1"}}}
	router := routerFor(svc, "org1")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/attachment/delete/a1", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "a1", svc.gotAttachmentID)
	assert.Contains(t, w.Body.String(), "deleted_attachment_id")
}

func TestCreateAttachmentEndpoint(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &stubService{created: attachment.Result{OK: true, Data: attachment.CreatedAttachment{AttachmentID: "new-id"}}}
		router := routerFor(svc, "org1")

		body := `{"entity_type":"task","entity_id":"t1","filename":"file.pdf","url":"https://bucket.storage.googleapis.com/org1/task/t1/file.pdf"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/attachment/create", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "org1", svc.gotOrgID)
		assert.Contains(t, w.Body.String(), "new-id")
	})

	t.Run("invalid body", func(t *testing.T) {
		svc := &stubService{}
		router := routerFor(svc, "org1")

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/attachment/create", strings.NewReader(`{"entity_type":"task"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

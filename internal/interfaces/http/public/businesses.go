package public

import (
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/mzansibiz/mzansibiz-services/api/internal/interfaces/http/common"
	publicapp "github.com/mzansibiz/mzansibiz-services/api/internal/public/application"
	publicdomain "github.com/mzansibiz/mzansibiz-services/api/internal/public/domain"
)

func (h *Handler) businessListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		// The query is filtered as-is; whitespace is a literal substring.
		query := r.URL.Query().Get("q")

		entries := h.directory.FetchAll(ctx)
		index := publicapp.NewSearchIndex(entries)
		visible := index.Apply(query)

		items := make([]businessEntryResponse, 0, len(visible))
		for _, entry := range visible {
			items = append(items, buildBusinessEntryResponse(entry))
		}

		common.WriteJSON(h.logger, w, http.StatusOK, businessListResponse{
			Items: items,
			Total: len(items),
		})
	}
}

func (h *Handler) businessCreateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := common.UserFromContext(r.Context()); !ok {
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "authenticated user missing from request"})
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, common.MaxRegisterFormBytes)
		if err := r.ParseMultipartForm(common.MaxRegisterFormBytes); err != nil {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "invalid multipart form: " + err.Error()})
			return
		}

		draft := publicdomain.NewDraft().
			WithBusinessName(strings.TrimSpace(r.FormValue("businessName"))).
			WithAddress(strings.TrimSpace(r.FormValue("address"))).
			WithCategory(strings.TrimSpace(r.FormValue("category"))).
			WithContactNumber(strings.TrimSpace(r.FormValue("contactNumber")))

		file, header, err := r.FormFile("logo")
		if err == nil {
			defer file.Close()
			draft = draft.WithLogoHandle(header.Filename)
		} else if !errors.Is(err, http.ErrMissingFile) {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "invalid logo upload: " + err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
		defer cancel()

		entry, err := h.registration.Submit(ctx, draft, multipartAssetLoader(file, header))
		if err != nil {
			h.writeSubmitError(w, err)
			return
		}

		common.WriteJSON(h.logger, w, http.StatusCreated, map[string]any{
			"status":   "ok",
			"business": buildBusinessEntryResponse(entry),
		})
	}
}

// writeSubmitError maps the registration error taxonomy onto HTTP
// statuses. Persist failures surface their message verbatim, matching
// the app's behaviour of showing the underlying error.
func (h *Handler) writeSubmitError(w http.ResponseWriter, err error) {
	var validationErr *publicdomain.ValidationError
	if errors.As(err, &validationErr) {
		common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "Please fill in all fields and upload a logo."})
		return
	}

	if errors.Is(err, publicdomain.ErrLogoTooLarge) {
		common.WriteJSON(h.logger, w, http.StatusRequestEntityTooLarge, map[string]string{"error": "Logo file is too large."})
		return
	}

	var uploadErr *publicdomain.UploadError
	if errors.As(err, &uploadErr) {
		h.logger.Printf("business registration upload failed: %v", err)
		common.WriteJSON(h.logger, w, http.StatusBadGateway, map[string]string{"error": "Logo upload failed. Please try again."})
		return
	}

	var persistErr *publicdomain.PersistError
	if errors.As(err, &persistErr) {
		h.logger.Printf("business registration persist failed: %v", err)
		common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": persistErr.Error()})
		return
	}

	h.logger.Printf("business registration failed: %v", err)
	common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "Business registration failed."})
}

// multipartAssetLoader adapts the uploaded form file to the pipeline's
// asset loader, so the submit path stays identical whether the logo
// arrives from a device picker or a multipart request. A nil file means
// the logo field was absent and validation will reject the draft before
// the loader is ever consulted.
func multipartAssetLoader(file multipart.File, header *multipart.FileHeader) publicapp.AssetLoader {
	return publicapp.AssetLoaderFunc(func(_ context.Context, _ string) ([]byte, string, error) {
		if file == nil {
			return nil, "", errors.New("no logo file in request")
		}
		// Read one byte past the cap so an oversize file is rejected
		// rather than stored truncated.
		blob, err := io.ReadAll(io.LimitReader(file, common.MaxLogoUploadBytes+1))
		if err != nil {
			return nil, "", err
		}
		if len(blob) > common.MaxLogoUploadBytes {
			return nil, "", publicdomain.ErrLogoTooLarge
		}
		contentType := ""
		if header != nil {
			contentType = header.Header.Get("Content-Type")
		}
		return blob, contentType, nil
	})
}

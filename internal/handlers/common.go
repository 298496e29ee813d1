package handlers

import (
	"io"
	"net/http"
	"time"

	"SURUWE_BACK-END/internal/utils"
)

// timeNow is swapped out in tests.
var timeNow = func() time.Time { return time.Now().UTC() }

// maxUploadMemory bounds multipart parsing buffers (32MB, stdlib default).
const maxUploadMemory = 32 << 20

// readMultipartFile pulls the named file part out of a multipart request.
// A non-nil error means the response has already been written.
func readMultipartFile(w http.ResponseWriter, r *http.Request, field string) ([]byte, string, error) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid request body", "expected multipart form data")
		return nil, "", err
	}
	file, header, err := r.FormFile(field)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid request body", "missing file field \""+field+"\"")
		return nil, "", err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid request body", "could not read uploaded file")
		return nil, "", err
	}
	return data, header.Filename, nil
}

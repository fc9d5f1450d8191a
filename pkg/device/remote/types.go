package remote

type EmptyResponse struct {
}

type PrintRequest struct {
	Pix    []byte
	Width  int
	Height int
	Layout int
}

package archive

import "encoding/json"

type heightResponse struct {
	Height int64 `json:"height"`
}

type blocksRequest struct {
	From   uint32   `json:"from"`
	To     uint32   `json:"to"`
	Events []string `json:"events"`
}

type blocksResponse struct {
	Blocks []blockDTO `json:"blocks"`
}

type blockDTO struct {
	Header headerDTO  `json:"header"`
	Events []eventDTO `json:"events"`
}

type headerDTO struct {
	Height      int64  `json:"height"`
	Hash        string `json:"hash"`
	Timestamp   int64  `json:"timestamp"`
	SpecVersion int64  `json:"specVersion"`
}

type eventDTO struct {
	Index     int64           `json:"index"`
	Name      string          `json:"name"`
	TypeHash  string          `json:"typeHash"`
	Args      json.RawMessage `json:"args"`
	Extrinsic *extrinsicDTO   `json:"extrinsic,omitempty"`
}

type extrinsicDTO struct {
	Hash string `json:"hash"`
	Fee  string `json:"fee"`
}

type apiError struct {
	Message string `json:"error"`
}

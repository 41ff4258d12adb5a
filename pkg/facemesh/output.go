package facemesh

import (
	"io"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// resultIndent is the indentation used for result documents.
const resultIndent = "    "

// WriteResult writes r as indented JSON followed by a newline.
func WriteResult(w io.Writer, r *Result) error {
	out := *r
	if out.Faces == nil {
		out.Faces = []Face{}
	}
	data, err := json.MarshalIndent(out, "", resultIndent)
	if err != nil {
		return err
	}
	_, err = w.Write(append(data, '\n'))
	return err
}

// WriteError writes err as a compact {"error": ...} document followed by a newline.
func WriteError(w io.Writer, err error) error {
	data, merr := json.Marshal(ErrorOutput{Error: err.Error()})
	if merr != nil {
		return merr
	}
	_, werr := w.Write(append(data, '\n'))
	return werr
}

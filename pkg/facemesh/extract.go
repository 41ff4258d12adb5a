package facemesh

// Opener constructs the Mesh used by Extract.
type Opener func() (Mesh, error)

// Open returns an Opener that builds a FaceMesh from cfg.
func Open(cfg Config) Opener {
	return func() (Mesh, error) {
		m, err := New(cfg)
		if err != nil {
			return nil, err
		}
		return m, nil
	}
}

// Extract loads the image at path and returns the landmarks of every face
// found in it. The mesh from open is released before Extract returns.
func Extract(path string, open Opener) (*Result, error) {
	img, err := LoadImage(path)
	if err != nil {
		return nil, err
	}
	defer img.Close()

	rgb, err := ToRGB(img)
	if err != nil {
		return nil, err
	}
	defer rgb.Close()

	mesh, err := open()
	if err != nil {
		return nil, err
	}
	defer mesh.Close()

	faces, err := mesh.Process(rgb)
	if err != nil {
		return nil, err
	}
	if faces == nil {
		faces = []Face{}
	}

	return &Result{
		ImageWidth:  img.Cols(),
		ImageHeight: img.Rows(),
		Faces:       faces,
	}, nil
}

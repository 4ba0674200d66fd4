package scenes

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// Resizer is implemented by scenes that follow the viewport size.
type Resizer interface {
	Resize(width, height int)
}

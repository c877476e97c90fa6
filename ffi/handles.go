package ffi

// Opaque foreign classes. Values of these types are never constructed or
// inspected on the Go side; only pointers handed out by the foreign allocator
// exist, and they are only ever passed back to foreign entry points.
type (
	// Clock is sf::Clock.
	Clock struct{ _ [0]byte }
	// Context is sf::Context.
	Context struct{ _ [0]byte }
	// View is sf::View.
	View struct{ _ [0]byte }
	// CircleShape is sf::CircleShape.
	CircleShape struct{ _ [0]byte }
	// CustomShape is an sf::Shape whose points come from callbacks.
	CustomShape struct{ _ [0]byte }
	// Texture is sf::Texture.
	Texture struct{ _ [0]byte }
	// Image is sf::Image.
	Image struct{ _ [0]byte }
	// SfString is sf::String (UTF-32).
	SfString struct{ _ [0]byte }
	// StdString is std::string.
	StdString struct{ _ [0]byte }
	// StdStringVector is std::vector<std::string>.
	StdStringVector struct{ _ [0]byte }
	// InputStream is an sf::InputStream whose operations come from callbacks.
	InputStream struct{ _ [0]byte }
	// CustomSoundRecorder is an sf::SoundRecorder whose hooks come from callbacks.
	CustomSoundRecorder struct{ _ [0]byte }
)

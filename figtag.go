// Package figtag expands liquid-style img tags into captioned figure markup.
//
// A document carries tags such as:
//
//	{% img left half /images/ninja.png Ninja Attack! %}
//
// and the engine replaces each with an HTML fragment:
//
//	<div class="figure left half" style="width: 484px; height: auto;">
//	<img class="left half" style="width: 484px height: auto;" alt="Ninja Attack!" title="Ninja Attack!" src="/images/ninja.png">
//	</div>
//
// # Basic Usage
//
//	engine := figtag.MustNew(figtag.WithContentRoot("content"))
//	html, err := engine.Expand(ctx, document)
//
// # Tag Grammar
//
//	{% img [class name(s)] [http[s]:/]/path/to/image [width [height]] [title text | "title text" ["alt text" ["caption text"]]] %}
//
// The source must look like a path or URL: it starts with http://, https://
// or a slash, or contains a slash. Everything before it is the class list.
// The trailing text is the title; two or three quoted segments split it into
// title, alt and caption. When no width is given it is read from the image
// file under the content root.
//
// # Custom Resolvers
//
// Other tags are handled by registering a Resolver:
//
//	engine.MustRegister(figtag.NewResolverFunc("youtube",
//	    func(ctx context.Context, s *figtag.Settings, markup string) (string, error) {
//	        return "<iframe src=\"https://www.youtube.com/embed/" + markup + "\"></iframe>", nil
//	    }))
//
// Tags without a resolver are left in the output unchanged.
//
// # Errors
//
// Markup without a source token fails with a markup syntax error
// (IsMarkupSyntaxError); a source that does not exist under the content root
// fails with IsResourceNotFoundError. Expand applies the configured
// ErrorStrategy to failing tags.
package figtag

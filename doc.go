/*
Package elft defines the interface between a latent friction ridge search
evaluation and the algorithms under test.

An implementation provides an Extractor, which turns latent and exemplar
images into templates and enrolls exemplar templates into a reference
database, and a Searcher, which searches latent templates against that
database and returns candidate lists. Both register themselves by name with
RegisterExtractor and RegisterSearcher, usually from an init function, and
are obtained with NewExtractor and NewSearcher.

The remaining types are plain data carriers exchanged across that boundary.
Implementations report failures with ReturnStatus rather than panicking.
*/
package elft

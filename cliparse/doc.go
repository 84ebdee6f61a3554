/*
Package cliparse handles configuration parsing for the petition server.

Settings come from CLI flags first, then environment variables, then
defaults:

  - PORT (-p): server port (default 3324)
  - DB_PATH (-d): document store file (default data/petition.db)
  - SITE_URL (-site): public petition URL embedded in share links
    (default http://localhost:<port>/)

Nothing is secret, so everything may be passed on the command line.
*/
package cliparse

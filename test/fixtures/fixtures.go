// Package fixtures provides markup and API payload fixtures shared by tests.
package fixtures

import "fmt"

// HomepageWithEditURI creates a blog homepage advertising an RSD document.
// The rel attribute is upper-case and single-quoted on purpose.
func HomepageWithEditURI(rsdURL string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <title>Field Notes</title>
    <LINK REL='EditURI' type='application/rsd+xml' title='RSD' href='%s' />
    <link rel="alternate" type="application/rss+xml" href="/feed.xml">
</head>
<body><h1>Field Notes</h1></body>
</html>
`, rsdURL)
}

// HomepageWithMicropub creates a homepage advertising Micropub and IndieAuth.
func HomepageWithMicropub(micropub, auth, token string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <title>Field Notes</title>
    <link rel="micropub" href="%s">
    <link rel="authorization_endpoint" href="%s">
    <link href="%s" rel="token_endpoint">
</head>
<body><h1>Field Notes</h1></body>
</html>
`, micropub, auth, token)
}

// HomepageWithBoth advertises both an RSD document and a Micropub endpoint.
func HomepageWithBoth(rsdURL, micropub string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <link rel="micropub" href="%s">
    <link rel="EditURI" type="application/rsd+xml" href="%s">
</head>
<body></body>
</html>
`, micropub, rsdURL)
}

// HomepageWithoutEndpoints has links, none of them for publishing.
func HomepageWithoutEndpoints() string {
	return `<!DOCTYPE html>
<html>
<head>
    <link rel="stylesheet" href="/style.css">
    <link rel="icon" href="/favicon.ico">
</head>
<body></body>
</html>
`
}

// RSD creates a Really Simple Discovery document listing several APIs,
// Blogger among them.
func RSD(endpoint, blogID string) string {
	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<rsd version="1.0" xmlns="http://archipelago.phrasewise.com/rsd">
  <service>
    <engineName>WordPress</engineName>
    <homePageLink>https://notes.example</homePageLink>
    <apis>
      <api name="WordPress" blogID="%[2]s" preferred="true" apiLink="%[1]s" />
      <api name="Movable Type" blogID="%[2]s" preferred="false" apiLink="%[1]s" />
      <api name="MetaWeblog" blogID="%[2]s" preferred="false" apiLink="%[1]s" />
      <api name="Blogger" blogID="%[2]s" preferred="false" apiLink="%[1]s" />
    </apis>
  </service>
</rsd>
`, endpoint, blogID)
}

// RSDWithoutBlogger lists only APIs the client does not speak.
func RSDWithoutBlogger(endpoint string) string {
	return fmt.Sprintf(`<?xml version="1.0"?>
<rsd version="1.0">
  <service>
    <apis>
      <api name="Atom" blogID="" preferred="true" apiLink="%s" />
    </apis>
  </service>
</rsd>
`, endpoint)
}

// JSONFeed is a Micro.blog timeline page with two posts.
func JSONFeed() string {
	return `{
  "version": "https://jsonfeed.org/version/1",
  "title": "Timeline",
  "items": [
    {
      "id": "1001",
      "content_html": "<p>Morning walk.</p>",
      "url": "https://ana.micro.blog/2024/03/01/morning-walk.html",
      "date_published": "2024-03-01T08:30:00+00:00",
      "author": {
        "name": "Ana Lima",
        "url": "https://ana.micro.blog/",
        "avatar": "https://avatars.micro.blog/ana.jpg",
        "_microblog": {"username": "ana"}
      },
      "_microblog": {"is_conversation": true, "reply_count": 2}
    },
    {
      "id": 1002,
      "title": "Reading list",
      "content_html": "<p>Three books.</p>",
      "url": "https://ben.example/reading",
      "author": {"name": "Ben", "_microblog": {"username": "ben"}},
      "_microblog": {"is_conversation": false}
    }
  ]
}`
}

// UserFeed is the posts/{handle} reply: profile plus recent posts.
func UserFeed() string {
	return `{
  "author": {
    "name": "Ana Lima",
    "url": "https://ana.micro.blog/",
    "avatar": "https://avatars.micro.blog/ana.jpg"
  },
  "_microblog": {
    "username": "ana",
    "bio": "Walks and words.",
    "following_count": 42,
    "discover_count": 7,
    "is_following": true
  },
  "items": [
    {"id": "1001", "content_html": "<p>Morning walk.</p>", "url": "https://ana.micro.blog/2024/03/01/morning-walk.html"}
  ]
}`
}

// MicropubSource is a q=source listing with a draft.
func MicropubSource() string {
	return `{
  "items": [
    {
      "type": ["h-entry"],
      "properties": {
        "uid": ["77"],
        "name": ["Draft idea"],
        "content": ["Not ready yet."],
        "url": ["https://notes.example/2024/03/02/draft-idea.html"],
        "published": ["2024-03-02T10:00:00+00:00"],
        "post-status": ["draft"]
      }
    },
    {
      "type": ["h-entry"],
      "properties": {
        "uid": ["76"],
        "content": [{"html": "<p>Shipped.</p>"}],
        "url": ["https://notes.example/2024/03/01/shipped.html"],
        "post-status": ["published"]
      }
    }
  ]
}`
}

// MediaSource is a media endpoint q=source listing.
func MediaSource() string {
	return `{"items": [{"url": "https://cdn.example/a.jpg", "alt": "", "published": "2024-03-01T00:00:00Z"}]}`
}

// Users is a users/following or users/search reply.
func Users() string {
	return `[
  {"username": "ana", "name": "Ana Lima", "avatar": "https://avatars.micro.blog/ana.jpg", "url": "https://ana.micro.blog/"},
  {"username": "ben", "full_name": "Ben", "gravatar_url": "https://gravatar.example/ben.jpg"}
]`
}

// RPCString is a methodResponse carrying one string param.
func RPCString(s string) string {
	return fmt.Sprintf(`<?xml version="1.0"?>
<methodResponse><params><param><value><string>%s</string></value></param></params></methodResponse>`, s)
}

// RPCBool is a methodResponse carrying one boolean param.
func RPCBool(b bool) string {
	v := 0
	if b {
		v = 1
	}
	return fmt.Sprintf(`<?xml version="1.0"?>
<methodResponse><params><param><value><boolean>%d</boolean></value></param></params></methodResponse>`, v)
}

// RPCFault is a fault response with an int code.
func RPCFault(code int, message string) string {
	return fmt.Sprintf(`<?xml version="1.0"?>
<methodResponse>
  <fault>
    <value>
      <struct>
        <member><name>faultCode</name><value><int>%d</int></value></member>
        <member><name>faultString</name><value><string>%s</string></value></member>
      </struct>
    </value>
  </fault>
</methodResponse>`, code, message)
}

// RPCPost is a getPost reply as WordPress sends it.
func RPCPost(id, title, link string) string {
	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<methodResponse>
  <params>
    <param>
      <value>
      <struct>
        <member><name>post_id</name><value><string>%s</string></value></member>
        <member><name>post_title</name><value><string>%s</string></value></member>
        <member><name>post_date_gmt</name><value><dateTime.iso8601>20240301T08:30:00</dateTime.iso8601></value></member>
        <member><name>post_status</name><value><string>publish</string></value></member>
        <member><name>post_content</name><value><string>&lt;p&gt;Hello&lt;/p&gt;</string></value></member>
        <member><name>link</name><value><string>%s</string></value></member>
      </struct>
      </value>
    </param>
  </params>
</methodResponse>`, id, title, link)
}

// RPCMedia is a newMediaObject reply.
func RPCMedia(url, id string) string {
	return fmt.Sprintf(`<?xml version="1.0"?>
<methodResponse><params><param><value><struct>
<member><name>id</name><value><string>%s</string></value></member>
<member><name>file</name><value><string>image.jpg</string></value></member>
<member><name>url</name><value><string>%s</string></value></member>
<member><name>type</name><value><string>image/jpeg</string></value></member>
</struct></value></param></params></methodResponse>`, id, url)
}

// RPCUsersBlogs is a blogger.getUsersBlogs reply with one blog.
func RPCUsersBlogs(endpoint string) string {
	return fmt.Sprintf(`<?xml version="1.0"?>
<methodResponse><params><param><value><array><data>
<value><struct>
<member><name>isAdmin</name><value><boolean>1</boolean></value></member>
<member><name>url</name><value><string>https://notes.example/</string></value></member>
<member><name>blogid</name><value><string>1</string></value></member>
<member><name>blogName</name><value><string>Field Notes</string></value></member>
<member><name>xmlrpc</name><value><string>%s</string></value></member>
</struct></value>
</data></array></value></param></params></methodResponse>`, endpoint)
}
